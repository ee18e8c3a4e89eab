package triangle

import (
	"fmt"
	"strings"
)

// Variant selects what the frame renderer draws after clearing the surface.
type Variant int

const (
	// VariantVertexBuffer draws the triangle from an uploaded vertex buffer.
	VariantVertexBuffer Variant = iota

	// VariantShader draws the triangle with vertices generated in the shader.
	VariantShader

	// VariantClear only clears the surface; no pipeline is built.
	VariantClear
)

// String returns the variant name as accepted by ParseVariant.
func (v Variant) String() string {
	switch v {
	case VariantVertexBuffer:
		return "vertex-buffer"
	case VariantShader:
		return "shader"
	case VariantClear:
		return "clear"
	default:
		return "unknown"
	}
}

// HasPipeline reports whether the variant builds a render pipeline.
func (v Variant) HasPipeline() bool { return v == VariantVertexBuffer || v == VariantShader }

// HasVertexBuffer reports whether the variant uploads a vertex buffer.
func (v Variant) HasVertexBuffer() bool { return v == VariantVertexBuffer }

// ParseVariant parses a variant name. Matching is case-insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertex-buffer", "vertexbuffer", "vertex":
		return VariantVertexBuffer, nil
	case "shader":
		return VariantShader, nil
	case "clear":
		return VariantClear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidVariant, s)
	}
}
