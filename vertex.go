package triangle

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex in the vertex buffer.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	color    (vec3<f32>) = 12 bytes (location 1)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// colorOffset is the byte offset of Vertex.Color inside one vertex.
const colorOffset = 12

// Vertex is one corner of the triangle: a clip-space position and an RGB color.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// triangleVertices is the fixed triangle, counter-clockwise in clip space.
var triangleVertices = [3]Vertex{
	{Position: [3]float32{0, 0.5, 0}, Color: [3]float32{1, 0, 0}},
	{Position: [3]float32{-0.5, -0.5, 0}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{0.5, -0.5, 0}, Color: [3]float32{0, 0, 1}},
}

// Triangle returns a copy of the three hard-coded triangle vertices:
// a red top, a green bottom-left and a blue bottom-right corner.
func Triangle() []Vertex {
	out := make([]Vertex, len(triangleVertices))
	copy(out, triangleVertices[:])
	return out
}

// VertexLayout returns the vertex buffer layout matching [Vertex].
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},           // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: colorOffset, ShaderLocation: 1}, // color
			},
		},
	}
}

// VertexBytes packs vertices into little-endian bytes ready for upload.
func VertexBytes(vs []Vertex) []byte {
	buf := make([]byte, len(vs)*VertexStride)
	off := 0
	for i := range vs {
		for _, f := range vs[i].Position {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
		for _, f := range vs[i].Color {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
			off += 4
		}
	}
	return buf
}

// SignedArea returns twice the signed area of the triangle a, b, c projected
// onto the XY plane. Positive means counter-clockwise.
func SignedArea(a, b, c Vertex) float32 {
	return (b.Position[0]-a.Position[0])*(c.Position[1]-a.Position[1]) -
		(c.Position[0]-a.Position[0])*(b.Position[1]-a.Position[1])
}
