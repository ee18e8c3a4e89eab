package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/triangle"
)

// keyMap lists the keys the event loop reacts to. Escape exits; Space is
// delivered so Input hooks can see it.
var keyMap = map[glfw.Key]gpucontext.Key{
	glfw.KeyEscape: gpucontext.KeyEscape,
	glfw.KeySpace:  gpucontext.KeySpace,
}

// mapKey converts a GLFW key. Keys the application has no use for are
// dropped.
func mapKey(k glfw.Key) (gpucontext.Key, bool) {
	key, ok := keyMap[k]
	return key, ok
}

// mapAction treats repeats as presses.
func mapAction(a glfw.Action) triangle.KeyState {
	if a == glfw.Release {
		return triangle.KeyReleased
	}
	return triangle.KeyPressed
}
