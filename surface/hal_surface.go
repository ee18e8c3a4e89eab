// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/triangle"
	"github.com/gogpu/wgpu/hal"
)

// HAL is a [Surface] backed by a gogpu/wgpu hal.Surface.
//
// The device and queue are borrowed: HAL never destroys them. The
// hal.Surface is owned and released by Destroy.
type HAL struct {
	surface hal.Surface
	device  hal.Device
	queue   hal.Queue

	config     Config
	configured bool
	destroyed  bool
}

var _ Surface = (*HAL)(nil)

// NewHAL wraps s for presentation through queue.
func NewHAL(s hal.Surface, device hal.Device, queue hal.Queue) *HAL {
	return &HAL{surface: s, device: device, queue: queue}
}

// Configure (re)configures the surface. The texture usage is always
// RenderAttachment and the alpha mode opaque.
func (h *HAL) Configure(cfg Config) error {
	if h.destroyed {
		return ErrDestroyed
	}
	if !cfg.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	err := h.surface.Configure(h.device, &hal.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: cfg.PresentMode.hal(),
		AlphaMode:   hal.CompositeAlphaModeOpaque,
	})
	if err != nil {
		return Classify(fmt.Errorf("configure surface: %w", err))
	}
	h.config = cfg
	h.configured = true
	triangle.Logger().Info("surface configured", "config", cfg.String())
	return nil
}

// Config returns the last applied configuration.
func (h *HAL) Config() Config { return h.config }

// Acquire waits for the next surface texture and creates a view of it.
func (h *HAL) Acquire() (*Frame, error) {
	if h.destroyed {
		return nil, ErrDestroyed
	}
	if !h.configured {
		return nil, ErrNotConfigured
	}
	acquired, err := h.surface.AcquireTexture(nil)
	if err != nil {
		return nil, Classify(fmt.Errorf("acquire surface texture: %w", err))
	}
	view, err := h.device.CreateTextureView(acquired.Texture, &hal.TextureViewDescriptor{
		Label:  "surface_frame_view",
		Format: h.config.Format,
	})
	if err != nil {
		h.surface.DiscardTexture(acquired.Texture)
		return nil, Classify(fmt.Errorf("create surface view: %w", err))
	}
	return &Frame{View: view, Suboptimal: acquired.Suboptimal, texture: acquired.Texture}, nil
}

// Present queues the frame for display, then destroys its view.
func (h *HAL) Present(f *Frame) error {
	if f == nil {
		return nil
	}
	defer h.releaseView(f)
	if err := h.queue.Present(h.surface, f.texture); err != nil {
		return Classify(fmt.Errorf("present: %w", err))
	}
	return nil
}

// Discard gives the surface texture back without presenting it.
func (h *HAL) Discard(f *Frame) {
	if f == nil {
		return
	}
	h.releaseView(f)
	if f.texture != nil {
		h.surface.DiscardTexture(f.texture)
		f.texture = nil
	}
}

// Destroy unconfigures and releases the surface. Safe to call multiple times.
func (h *HAL) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	if h.surface == nil {
		return
	}
	if h.configured && h.device != nil {
		h.surface.Unconfigure(h.device)
	}
	h.surface.Destroy()
	h.surface = nil
}

func (h *HAL) releaseView(f *Frame) {
	if f.View != nil && h.device != nil {
		h.device.DestroyTextureView(f.View)
		f.View = nil
	}
}
