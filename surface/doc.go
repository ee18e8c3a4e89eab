// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface configures a window surface and hands out presentable frames.
//
// A surface is the drawing target bound to a window. It must be configured
// with a pixel format, a strictly positive size and a presentation mode
// before frames can be acquired. Each frame is acquired, rendered into
// through its texture view, and then either presented or discarded.
//
// # Surface Types
//
//   - HAL: wraps a gogpu/wgpu hal.Surface together with the device and queue
//     that present to it
//
// Tests and host applications can provide their own [Surface].
//
// # Errors
//
// [Classify] maps backend errors onto the frame error taxonomy of the
// triangle package: surface lost or outdated becomes triangle.ErrSurfaceLost,
// device out-of-memory becomes triangle.ErrOutOfMemory and acquire timeouts
// become triangle.ErrSurfaceTimeout. Anything else is transient.
//
// # Usage
//
//	s := surface.NewHAL(halSurface, device, queue)
//	if err := s.Configure(cfg); err != nil { ... }
//
//	frame, err := s.Acquire()
//	if err != nil { ... }
//	// record a render pass into frame.View
//	err = s.Present(frame)
package surface
