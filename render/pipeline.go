// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/triangle"
	"github.com/gogpu/wgpu/hal"
)

// Pipeline is the fixed triangle render pipeline. It is immutable once built.
type Pipeline struct {
	device  hal.Device
	variant triangle.Variant
	format  gputypes.TextureFormat

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
}

// PrimitiveState returns the rasterization state every triangle pipeline
// uses: triangle list, counter-clockwise front face, back faces culled.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeBack,
	}
}

// MultisampleState returns the single-sample state with all samples active.
func MultisampleState() gputypes.MultisampleState {
	return gputypes.MultisampleState{
		Count: 1,
		Mask:  0xFFFFFFFF,
	}
}

// NewPipeline compiles the variant's shader and creates the render pipeline
// targeting format. The clear variant has no pipeline and is rejected.
func NewPipeline(device hal.Device, format gputypes.TextureFormat, variant triangle.Variant) (*Pipeline, error) {
	if device == nil {
		return nil, fmt.Errorf("render: nil device")
	}
	if !variant.HasPipeline() {
		return nil, fmt.Errorf("render: variant %s has no pipeline", variant)
	}
	p := &Pipeline{device: device, variant: variant, format: format}
	if err := p.create(); err != nil {
		p.Destroy()
		return nil, err
	}
	triangle.Logger().Debug("render pipeline created",
		"variant", variant.String(),
		"format", format,
		"buffers", len(p.vertexBuffers()))
	return p, nil
}

// Variant returns the variant the pipeline was built for.
func (p *Pipeline) Variant() triangle.Variant { return p.variant }

// Format returns the color target format.
func (p *Pipeline) Format() gputypes.TextureFormat { return p.format }

// Handle returns the HAL render pipeline.
func (p *Pipeline) Handle() hal.RenderPipeline { return p.pipeline }

func (p *Pipeline) vertexBuffers() []gputypes.VertexBufferLayout {
	if p.variant.HasVertexBuffer() {
		return triangle.VertexLayout()
	}
	// Vertices are generated in the vertex shader.
	return nil
}

func (p *Pipeline) create() error {
	spirv, err := CompileShader(ShaderSource(p.variant))
	if err != nil {
		return fmt.Errorf("render: %s shader: %w", p.variant, err)
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "triangle_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("render: create shader module: %w", err)
	}
	p.shader = shader

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "triangle_pipe_layout",
	})
	if err != nil {
		return fmt.Errorf("render: create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	// A nil blend state writes fragment colors unchanged (replace).
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "triangle_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: VertexEntryPoint,
			Buffers:    p.vertexBuffers(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive:   PrimitiveState(),
		Multisample: MultisampleState(),
	})
	if err != nil {
		return fmt.Errorf("render: create render pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// Destroy releases all pipeline resources in reverse creation order.
// Safe to call multiple times.
func (p *Pipeline) Destroy() {
	if p == nil || p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
