// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// submitTimeout bounds the wait for one frame's command buffer.
const submitTimeout = 5 * time.Second

// BuiltinVertexCount is the number of vertices the shader variant generates.
const BuiltinVertexCount = 3

// ErrSubmitTimeout is returned when the GPU does not finish a frame in time.
var ErrSubmitTimeout = errors.New("render: GPU did not finish frame in time")

// PassEncoder is the subset of hal.RenderPassEncoder used to record draws.
type PassEncoder interface {
	SetPipeline(pipeline hal.RenderPipeline)
	SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
}

// DrawList is what a frame draws after clearing. A zero DrawList only clears.
type DrawList struct {
	// Pipeline is nil for clear-only frames.
	Pipeline *Pipeline

	// Vertices is nil when the shader generates the vertices.
	Vertices *VertexBuffer
}

// VertexCount returns the number of vertices drawn per frame.
func (d DrawList) VertexCount() uint32 {
	switch {
	case d.Pipeline == nil:
		return 0
	case d.Vertices != nil:
		return d.Vertices.Count()
	default:
		return BuiltinVertexCount
	}
}

// Record records the draw into rp: bind the pipeline, bind the vertex buffer
// to slot 0 if there is one, and draw all vertices with one instance.
// Returns the number of draw calls recorded (0 or 1).
func (d DrawList) Record(rp PassEncoder) int {
	if d.Pipeline == nil {
		return 0
	}
	rp.SetPipeline(d.Pipeline.Handle())
	if d.Vertices != nil {
		rp.SetVertexBuffer(0, d.Vertices.Handle(), 0)
	}
	rp.Draw(d.VertexCount(), 1, 0, 0)
	return 1
}

// FrameEncoder encodes and submits one command buffer per frame.
// It owns a fence reused across frames with a monotonically increasing value.
type FrameEncoder struct {
	device hal.Device
	queue  hal.Queue

	fence      hal.Fence
	fenceValue uint64
}

// NewFrameEncoder creates a frame encoder for device and queue.
func NewFrameEncoder(device hal.Device, queue hal.Queue) (*FrameEncoder, error) {
	fence, err := device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("render: create fence: %w", err)
	}
	return &FrameEncoder{device: device, queue: queue, fence: fence}, nil
}

// Encode records a single render pass that clears view to clear and then
// records draws, and submits it. It returns once the GPU has finished.
func (e *FrameEncoder) Encode(view hal.TextureView, clear gputypes.Color, draws DrawList) error {
	if view == nil {
		return fmt.Errorf("render: nil target view")
	}
	encoder, err := e.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "triangle_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("triangle_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "triangle_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	draws.Record(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer e.device.FreeCommandBuffer(cmdBuf)

	return e.submit(cmdBuf)
}

// submit queues cmdBuf and waits for the fence so the frame is complete
// before the surface image is presented.
func (e *FrameEncoder) submit(cmdBuf hal.CommandBuffer) error {
	e.fenceValue++
	if err := e.queue.Submit([]hal.CommandBuffer{cmdBuf}, e.fence, e.fenceValue); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	ok, err := e.device.Wait(e.fence, e.fenceValue, submitTimeout)
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !ok {
		return ErrSubmitTimeout
	}
	return nil
}

// Submitted returns the number of command buffers submitted so far.
func (e *FrameEncoder) Submitted() uint64 { return e.fenceValue }

// Destroy releases the fence. Safe to call multiple times.
func (e *FrameEncoder) Destroy() {
	if e == nil || e.fence == nil {
		return
	}
	e.device.DestroyFence(e.fence)
	e.fence = nil
}
