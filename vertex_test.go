package triangle

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTriangleIsCounterClockwise(t *testing.T) {
	vs := Triangle()
	if len(vs) != 3 {
		t.Fatalf("Triangle() returned %d vertices, want 3", len(vs))
	}
	if area := SignedArea(vs[0], vs[1], vs[2]); area <= 0 {
		t.Errorf("SignedArea = %v, want > 0 (counter-clockwise)", area)
	}
}

func TestTriangleReturnsCopy(t *testing.T) {
	vs := Triangle()
	vs[0].Position[0] = 42
	if Triangle()[0].Position[0] != 0 {
		t.Error("mutating the result of Triangle() changed the fixed vertices")
	}
}

func TestVertexBytes(t *testing.T) {
	vs := Triangle()
	data := VertexBytes(vs)
	if len(data) != 3*VertexStride {
		t.Fatalf("len(VertexBytes) = %d, want %d", len(data), 3*VertexStride)
	}

	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}

	// Second vertex: position (-0.5, -0.5, 0), color green.
	base := VertexStride
	if got := readF32(base); got != -0.5 {
		t.Errorf("vertex 1 x = %v, want -0.5", got)
	}
	if got := readF32(base + colorOffset + 4); got != 1 {
		t.Errorf("vertex 1 green = %v, want 1", got)
	}
	// Third vertex blue channel is the last float.
	if got := readF32(len(data) - 4); got != 1 {
		t.Errorf("vertex 2 blue = %v, want 1", got)
	}
}

func TestVertexBytesEmpty(t *testing.T) {
	if got := VertexBytes(nil); len(got) != 0 {
		t.Errorf("VertexBytes(nil) = %d bytes, want 0", len(got))
	}
}

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("expected 1 vertex buffer layout, got %d", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(l.Attributes))
	}
	for i, a := range l.Attributes {
		if a.Format != gputypes.VertexFormatFloat32x3 {
			t.Errorf("attribute %d format = %v, want Float32x3", i, a.Format)
		}
		if int(a.ShaderLocation) != i {
			t.Errorf("attribute %d location = %d", i, a.ShaderLocation)
		}
	}
	if l.Attributes[1].Offset != colorOffset {
		t.Errorf("color offset = %d, want %d", l.Attributes[1].Offset, colorOffset)
	}
}
