//go:build linux && !wayland

package window

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// NativeHandles returns the X11 Display* and Window.
func (w *Window) NativeHandles() (display, window uintptr, err error) {
	display = uintptr(unsafe.Pointer(glfw.GetX11Display()))
	window = uintptr(w.win.GetX11Window())
	return display, window, nil
}
