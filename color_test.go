package triangle

import (
	"errors"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"hex6", "#ff0000", Color{1, 0, 0, 1}, false},
		{"hex6 no hash", "00ff00", Color{0, 1, 0, 1}, false},
		{"hex3", "#00f", Color{0, 0, 1, 1}, false},
		{"hex8", "#00000080", Color{0, 0, 0, 128.0 / 255}, false},
		{"uppercase", "#FFFFFF", Color{1, 1, 1, 1}, false},
		{"name", "black", Black, false},
		{"name mixed case", "White", Color{1, 1, 1, 1}, false},
		{"empty", "", Color{}, true},
		{"bad digit", "#gg0000", Color{}, true},
		{"bad length", "#12345", Color{}, true},
		{"unknown name", "notacolor", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tt.input, err)
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorGPU(t *testing.T) {
	c := RGB(0.1, 0.2, 0.3).GPU()
	if c.R != 0.1 || c.G != 0.2 || c.B != 0.3 || c.A != 1 {
		t.Errorf("GPU() = %+v", c)
	}
}

func colorNear(a, b Color) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
