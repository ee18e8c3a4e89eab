package triangle

import (
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestEventIsExit(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"close requested", CloseRequested(), true},
		{"escape pressed", KeyboardInput(gpucontext.KeyEscape, KeyPressed), true},
		{"escape released", KeyboardInput(gpucontext.KeyEscape, KeyReleased), false},
		{"space pressed", KeyboardInput(gpucontext.KeySpace, KeyPressed), false},
		{"resize", Resized(10, 10), false},
		{"redraw", RedrawRequested(), false},
		{"idle", MainEventsCleared(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsExit(); got != tt.want {
				t.Errorf("IsExit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	if got := Resized(640, 480).String(); got != "Resized(640x480)" {
		t.Errorf("String() = %q", got)
	}
	if got := ScaleFactorChanged(1, 2).String(); got != "ScaleFactorChanged(1x2)" {
		t.Errorf("String() = %q", got)
	}
	if got := CloseRequested().String(); got != "CloseRequested" {
		t.Errorf("String() = %q", got)
	}
	if got := EventKind(99).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
}
