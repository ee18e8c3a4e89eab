package gpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/surface"
)

// Options configures a graphics context.
type Options struct {
	// Backend selects the HAL backend. Only backends whose package is
	// imported are available; this package imports Vulkan.
	Backend gputypes.Backend

	// PowerPreference steers adapter selection between discrete and
	// integrated GPUs.
	PowerPreference gputypes.PowerPreference

	// PresentMode is the requested presentation mode. Unsupported modes fall
	// back to fifo.
	PresentMode surface.PresentMode

	// PreferSRGB picks an sRGB surface format when one is available.
	// By default the first supported format is used.
	PreferSRGB bool

	// Variant selects what is drawn after clearing.
	Variant triangle.Variant

	// ClearColor is the background color.
	ClearColor triangle.Color
}

// DefaultOptions returns Vulkan, high-performance adapter, vsync, the
// vertex-buffer triangle and a black background.
func DefaultOptions() Options {
	return Options{
		Backend:         gputypes.BackendVulkan,
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
		PresentMode:     surface.PresentModeFifo,
		Variant:         triangle.VariantVertexBuffer,
		ClearColor:      triangle.Black,
	}
}

// ErrInvalidOption is returned when a backend or power preference name is
// not recognized.
var ErrInvalidOption = errors.New("gpu: invalid option")

// ParseBackend parses a backend name: vulkan, metal, dx12 or gl.
func ParseBackend(s string) (gputypes.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vulkan", "vk":
		return gputypes.BackendVulkan, nil
	case "metal":
		return gputypes.BackendMetal, nil
	case "dx12", "d3d12":
		return gputypes.BackendDX12, nil
	case "gl", "opengl", "gles":
		return gputypes.BackendGL, nil
	default:
		return 0, fmt.Errorf("%w: backend %q", ErrInvalidOption, s)
	}
}

// ParsePowerPreference parses "high-performance", "low-power" or "none".
func ParsePowerPreference(s string) (gputypes.PowerPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high-performance", "high", "discrete":
		return gputypes.PowerPreferenceHighPerformance, nil
	case "low-power", "low", "integrated":
		return gputypes.PowerPreferenceLowPower, nil
	case "none", "":
		return gputypes.PowerPreferenceNone, nil
	default:
		return 0, fmt.Errorf("%w: power preference %q", ErrInvalidOption, s)
	}
}
