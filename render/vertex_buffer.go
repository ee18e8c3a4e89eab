// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/triangle"
	"github.com/gogpu/wgpu/hal"
)

// VertexBuffer is an immutable GPU buffer holding triangle vertices.
type VertexBuffer struct {
	device hal.Device
	buf    hal.Buffer
	count  uint32
	size   uint64
}

// NewVertexBuffer creates a vertex buffer and uploads vertices through queue.
func NewVertexBuffer(device hal.Device, queue hal.Queue, vertices []triangle.Vertex) (*VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("render: vertex buffer needs at least one vertex")
	}
	data := triangle.VertexBytes(vertices)
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "triangle_vertex_buffer",
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create vertex buffer: %w", err)
	}
	queue.WriteBuffer(buf, 0, data)

	triangle.Logger().Debug("vertex buffer uploaded", "vertices", len(vertices), "bytes", len(data))
	return &VertexBuffer{
		device: device,
		buf:    buf,
		count:  uint32(len(vertices)), //nolint:gosec // vertex count is tiny
		size:   uint64(len(data)),
	}, nil
}

// Count returns the number of vertices in the buffer.
func (vb *VertexBuffer) Count() uint32 { return vb.count }

// Size returns the buffer size in bytes.
func (vb *VertexBuffer) Size() uint64 { return vb.size }

// Handle returns the HAL buffer.
func (vb *VertexBuffer) Handle() hal.Buffer { return vb.buf }

// Destroy releases the buffer. Safe to call multiple times.
func (vb *VertexBuffer) Destroy() {
	if vb == nil || vb.buf == nil {
		return
	}
	vb.device.DestroyBuffer(vb.buf)
	vb.buf = nil
}
