package triangle

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"
)

// Color represents a clear color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Black is the default clear color.
var Black = Color{R: 0, G: 0, B: 0, A: 1}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// GPU converts the color to the clear value used by render passes.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParseColor parses a clear color.
// Supports hex formats "#RGB", "#RRGGBB", "#RRGGBBAA" (the leading '#' is
// optional) and SVG 1.1 color names such as "cornflowerblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint32
	a := uint32(255)
	var ok bool

	switch len(hex) {
	case 3: // RGB
		if r, ok = parseHex(hex[0:1]); !ok {
			break
		}
		if g, ok = parseHex(hex[1:2]); !ok {
			break
		}
		if b, ok = parseHex(hex[2:3]); !ok {
			break
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8: // RRGGBB, RRGGBBAA
		if r, ok = parseHex(hex[0:2]); !ok {
			break
		}
		if g, ok = parseHex(hex[2:4]); !ok {
			break
		}
		if b, ok = parseHex(hex[4:6]); !ok {
			break
		}
		if len(hex) == 8 {
			a, ok = parseHex(hex[6:8])
		}
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex parses a short hex string. ok is false on any non-hex digit.
func parseHex(s string) (val uint32, ok bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}
