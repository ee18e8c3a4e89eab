//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// NativeHandles returns the module HINSTANCE and the window HWND.
func (w *Window) NativeHandles() (display, window uintptr, err error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return 0, 0, fmt.Errorf("window: module handle: %w", err)
	}
	hwnd := w.win.GetWin32Window()
	return uintptr(module), uintptr(unsafe.Pointer(hwnd)), nil
}
