// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/triangle"
)

// Shader entry points shared by both triangle shaders.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

//go:embed shaders/triangle.wgsl
var triangleShaderSource string

//go:embed shaders/builtin_triangle.wgsl
var builtinTriangleShaderSource string

// ShaderSource returns the WGSL source used by the variant.
// The clear variant has no shader and returns "".
func ShaderSource(v triangle.Variant) string {
	switch v {
	case triangle.VariantVertexBuffer:
		return triangleShaderSource
	case triangle.VariantShader:
		return builtinTriangleShaderSource
	default:
		return ""
	}
}

// CompileShader compiles WGSL source to SPIR-V words.
func CompileShader(wgsl string) ([]uint32, error) {
	if wgsl == "" {
		return nil, fmt.Errorf("shader source is empty")
	}
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile shader: SPIR-V size %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
