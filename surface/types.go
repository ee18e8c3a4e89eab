// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// PresentMode is the policy synchronizing presented frames with the display.
type PresentMode uint8

const (
	// PresentModeFifo waits for vertical blank; frames are never dropped (vsync).
	PresentModeFifo PresentMode = iota

	// PresentModeFifoRelaxed is vsync that tears when a frame is late.
	PresentModeFifoRelaxed

	// PresentModeMailbox replaces the queued frame with the newest one.
	PresentModeMailbox

	// PresentModeImmediate presents without waiting; may tear.
	PresentModeImmediate
)

// String returns the present mode name.
func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeFifoRelaxed:
		return "fifo-relaxed"
	case PresentModeMailbox:
		return "mailbox"
	case PresentModeImmediate:
		return "immediate"
	default:
		return "unknown"
	}
}

// ParsePresentMode parses a present mode name. "vsync" is an alias for fifo.
func ParsePresentMode(s string) (PresentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "vsync", "":
		return PresentModeFifo, nil
	case "fifo-relaxed", "relaxed":
		return PresentModeFifoRelaxed, nil
	case "mailbox":
		return PresentModeMailbox, nil
	case "immediate":
		return PresentModeImmediate, nil
	default:
		return 0, fmt.Errorf("surface: unknown present mode %q", s)
	}
}

// hal converts the mode to the HAL enum.
func (m PresentMode) hal() hal.PresentMode {
	switch m {
	case PresentModeFifoRelaxed:
		return hal.PresentModeFifoRelaxed
	case PresentModeMailbox:
		return hal.PresentModeMailbox
	case PresentModeImmediate:
		return hal.PresentModeImmediate
	default:
		return hal.PresentModeFifo
	}
}

// Config is the surface configuration: pixel format, size in pixels and
// presentation mode.
type Config struct {
	Format      gputypes.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentMode
}

// Valid reports whether both dimensions are strictly positive.
// A surface must never be configured with a zero-sized dimension.
func (c Config) Valid() bool {
	return c.Width > 0 && c.Height > 0
}

// WithSize returns a copy of c with the given size.
func (c Config) WithSize(width, height uint32) Config {
	c.Width = width
	c.Height = height
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d format=%v present=%s", c.Width, c.Height, c.Format, c.PresentMode)
}

// ChooseFormat picks the surface format from the formats the adapter supports
// for the surface. The first format wins, unless preferSRGB is set and an
// sRGB format is available.
func ChooseFormat(formats []gputypes.TextureFormat, preferSRGB bool) (gputypes.TextureFormat, bool) {
	if len(formats) == 0 {
		return gputypes.TextureFormatUndefined, false
	}
	if preferSRGB {
		for _, f := range formats {
			if IsSRGB(f) {
				return f, true
			}
		}
	}
	return formats[0], true
}

// IsSRGB reports whether the format applies sRGB encoding on write.
func IsSRGB(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatBGRA8UnormSrgb || f == gputypes.TextureFormatRGBA8UnormSrgb
}

// SupportedPresentMode returns want if the surface supports it, otherwise
// fifo, which every surface supports.
func SupportedPresentMode(supported []hal.PresentMode, want PresentMode) PresentMode {
	for _, m := range supported {
		if m == want.hal() {
			return want
		}
	}
	return PresentModeFifo
}
