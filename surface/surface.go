// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/wgpu/hal"

// Surface is a presentable drawing target bound to a window.
//
// Surfaces are NOT thread-safe. They are owned by the event loop goroutine.
type Surface interface {
	// Configure applies cfg. Returns ErrInvalidSize if either dimension is zero.
	Configure(cfg Config) error

	// Acquire returns the next presentable frame. Errors are classified
	// with [Classify].
	Acquire() (*Frame, error)

	// Present queues the frame for display and releases it.
	Present(f *Frame) error

	// Discard releases an acquired frame without presenting it.
	Discard(f *Frame)

	// Destroy releases the surface. Destroy is idempotent.
	Destroy()
}

// Frame is one acquired surface image.
type Frame struct {
	// View is the render target for this frame.
	View hal.TextureView

	// Suboptimal is set when the surface still presents but no longer
	// matches the window exactly. The next resize fixes it.
	Suboptimal bool

	texture hal.SurfaceTexture
}

// NewFrame wraps a texture view as a frame. Used by Surface implementations
// that manage their own textures.
func NewFrame(view hal.TextureView) *Frame {
	return &Frame{View: view}
}
