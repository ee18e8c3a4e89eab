package gpu

// NativeWindow is the part of a platform window the graphics context needs.
type NativeWindow interface {
	// NativeHandles returns the platform display and window handles used to
	// create a surface (X11 Display*/Window, Win32 HINSTANCE/HWND).
	NativeHandles() (display, window uintptr, err error)

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height uint32)
}
