package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/triangle"
)

func TestMapKey(t *testing.T) {
	if k, ok := mapKey(glfw.KeyEscape); !ok || k != gpucontext.KeyEscape {
		t.Errorf("mapKey(Escape) = %v, %v", k, ok)
	}
	if k, ok := mapKey(glfw.KeySpace); !ok || k != gpucontext.KeySpace {
		t.Errorf("mapKey(Space) = %v, %v", k, ok)
	}
	if _, ok := mapKey(glfw.KeyF12); ok {
		t.Error("mapKey(F12) mapped an unused key")
	}
}

func TestMapAction(t *testing.T) {
	tests := []struct {
		action glfw.Action
		want   triangle.KeyState
	}{
		{glfw.Press, triangle.KeyPressed},
		{glfw.Repeat, triangle.KeyPressed},
		{glfw.Release, triangle.KeyReleased},
	}
	for _, tt := range tests {
		if got := mapAction(tt.action); got != tt.want {
			t.Errorf("mapAction(%v) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestEscapeKeyExits(t *testing.T) {
	k, _ := mapKey(glfw.KeyEscape)
	if !triangle.KeyboardInput(k, mapAction(glfw.Press)).IsExit() {
		t.Error("Escape press from GLFW does not exit")
	}
}

func TestClampSize(t *testing.T) {
	if clampSize(-1) != 0 || clampSize(0) != 0 || clampSize(640) != 640 {
		t.Error("clampSize")
	}
}
