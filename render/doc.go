// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render builds the fixed triangle pipeline and encodes frames.
//
// # Key Principle
//
// render RECEIVES a device and queue, it does NOT create them. The graphics
// context in package gpu owns the device and hands it to [NewPipeline],
// [NewVertexBuffer] and [NewFrameEncoder].
//
// # Pipeline
//
// The pipeline is compiled once and is immutable afterwards:
//
//   - WGSL shaders with entry points vs_main and fs_main, compiled to SPIR-V
//     with naga
//   - triangle-list topology, counter-clockwise front face, back-face culling
//   - no depth/stencil, single sample, one color target in the surface format
//
// # Frames
//
// Every frame is one command buffer with one render pass: clear the surface
// view to the background color and, when a pipeline is present, draw all
// vertices with exactly one instance. [DrawList.Record] holds the draw logic
// and accepts any [PassEncoder] so it can be verified without a GPU.
//
// # Usage
//
//	p, err := render.NewPipeline(device, format, triangle.VariantVertexBuffer)
//	vb, err := render.NewVertexBuffer(device, queue, triangle.Triangle())
//	enc, err := render.NewFrameEncoder(device, queue)
//
//	draws := render.DrawList{Pipeline: p, Vertices: vb}
//	err = enc.Encode(frame.View, triangle.Black.GPU(), draws)
package render
