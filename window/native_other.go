//go:build !(linux && !wayland) && !windows

package window

import (
	"fmt"
	"runtime"

	"github.com/gogpu/triangle"
)

// NativeHandles is not implemented on this platform.
func (w *Window) NativeHandles() (display, window uintptr, err error) {
	return 0, 0, fmt.Errorf("%w: %s", triangle.ErrUnsupportedPlatform, runtime.GOOS)
}
