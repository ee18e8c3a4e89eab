// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop device and queue for testing.
// Returns the device, queue, and a cleanup function.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// createNoopTarget creates a render-attachment texture and view to stand in
// for an acquired surface image.
func createNoopTarget(t *testing.T, device hal.Device, width, height uint32) (hal.Texture, hal.TextureView) {
	t.Helper()
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "test_target",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: "test_target_view"})
	if err != nil {
		device.DestroyTexture(tex)
		t.Fatalf("CreateTextureView failed: %v", err)
	}
	return tex, view
}

// passCall is one recorded PassEncoder call.
type passCall struct {
	op            string
	slot          uint32
	vertexCount   uint32
	instanceCount uint32
	firstVertex   uint32
	firstInstance uint32
}

// recordingPass is a PassEncoder that records calls.
type recordingPass struct {
	calls []passCall
}

func (r *recordingPass) SetPipeline(hal.RenderPipeline) {
	r.calls = append(r.calls, passCall{op: "SetPipeline"})
}

func (r *recordingPass) SetVertexBuffer(slot uint32, _ hal.Buffer, _ uint64) {
	r.calls = append(r.calls, passCall{op: "SetVertexBuffer", slot: slot})
}

func (r *recordingPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	r.calls = append(r.calls, passCall{
		op:            "Draw",
		vertexCount:   vertexCount,
		instanceCount: instanceCount,
		firstVertex:   firstVertex,
		firstInstance: firstInstance,
	})
}

func (r *recordingPass) draws() []passCall {
	var out []passCall
	for _, c := range r.calls {
		if c.op == "Draw" {
			out = append(out, c)
		}
	}
	return out
}
