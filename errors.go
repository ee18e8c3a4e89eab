package triangle

import "errors"

// Startup errors. Any of these returned while building the graphics context
// ends the process.
var (
	// ErrNoBackend is returned when the requested HAL backend is not compiled in.
	ErrNoBackend = errors.New("triangle: GPU backend not available")

	// ErrNoAdapter is returned when no adapter can present to the window surface.
	ErrNoAdapter = errors.New("triangle: no compatible GPU adapter found")

	// ErrDeviceCreation is returned when the adapter refuses to open a device.
	ErrDeviceCreation = errors.New("triangle: device creation failed")

	// ErrNoSurfaceFormat is returned when the surface reports no usable format.
	ErrNoSurfaceFormat = errors.New("triangle: surface has no supported format")

	// ErrUnsupportedPlatform is returned when native window handles cannot be
	// obtained on the current OS.
	ErrUnsupportedPlatform = errors.New("triangle: platform not supported")
)

// Frame errors returned by the frame renderer.
var (
	// ErrSurfaceLost means the surface must be reconfigured before the next
	// frame. The event loop recovers by resizing to the current size.
	ErrSurfaceLost = errors.New("triangle: surface lost")

	// ErrOutOfMemory is unrecoverable; the event loop terminates.
	ErrOutOfMemory = errors.New("triangle: out of memory")

	// ErrSurfaceTimeout is a transient acquisition failure; the frame is dropped.
	ErrSurfaceTimeout = errors.New("triangle: surface acquire timed out")
)

// Parse errors.
var (
	// ErrInvalidVariant is returned by ParseVariant for unknown names.
	ErrInvalidVariant = errors.New("triangle: invalid variant")

	// ErrInvalidColor is returned by ParseColor for malformed input.
	ErrInvalidColor = errors.New("triangle: invalid color")
)

// IsFatal reports whether err must terminate the process.
// Surface loss and timeouts are recoverable; everything else in the
// startup group and out-of-memory is not.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrOutOfMemory),
		errors.Is(err, ErrNoBackend),
		errors.Is(err, ErrNoAdapter),
		errors.Is(err, ErrDeviceCreation),
		errors.Is(err, ErrNoSurfaceFormat),
		errors.Is(err, ErrUnsupportedPlatform):
		return true
	default:
		return false
	}
}
