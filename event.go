package triangle

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// EventKind identifies the variant held by an [Event].
type EventKind int

const (
	// EventRedrawRequested asks for one frame to be rendered.
	EventRedrawRequested EventKind = iota

	// EventResized carries the new framebuffer size in pixels.
	EventResized

	// EventScaleFactorChanged carries the framebuffer size after a DPI change.
	EventScaleFactorChanged

	// EventKeyboardInput carries a key and whether it was pressed or released.
	EventKeyboardInput

	// EventCloseRequested is sent when the user asks to close the window.
	EventCloseRequested

	// EventMainEventsCleared is sent once all pending platform events have
	// been delivered. The loop uses it to request the next redraw.
	EventMainEventsCleared
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventRedrawRequested:
		return "RedrawRequested"
	case EventResized:
		return "Resized"
	case EventScaleFactorChanged:
		return "ScaleFactorChanged"
	case EventKeyboardInput:
		return "KeyboardInput"
	case EventCloseRequested:
		return "CloseRequested"
	case EventMainEventsCleared:
		return "MainEventsCleared"
	default:
		return "Unknown"
	}
}

// KeyState is the state of a key in a keyboard event.
type KeyState uint8

const (
	// KeyReleased is sent when a key goes up.
	KeyReleased KeyState = iota

	// KeyPressed is sent when a key goes down or auto-repeats.
	KeyPressed
)

// Event is a single window event. Only the fields relevant to Kind are set:
// Width/Height for resize and scale-factor events, Key/State for keyboard input.
type Event struct {
	Kind   EventKind
	Width  uint32
	Height uint32
	Key    gpucontext.Key
	State  KeyState
}

// RedrawRequested returns a redraw event.
func RedrawRequested() Event { return Event{Kind: EventRedrawRequested} }

// Resized returns a resize event.
func Resized(width, height uint32) Event {
	return Event{Kind: EventResized, Width: width, Height: height}
}

// ScaleFactorChanged returns a scale-factor event carrying the new pixel size.
func ScaleFactorChanged(width, height uint32) Event {
	return Event{Kind: EventScaleFactorChanged, Width: width, Height: height}
}

// KeyboardInput returns a keyboard event.
func KeyboardInput(key gpucontext.Key, state KeyState) Event {
	return Event{Kind: EventKeyboardInput, Key: key, State: state}
}

// CloseRequested returns a close event.
func CloseRequested() Event { return Event{Kind: EventCloseRequested} }

// MainEventsCleared returns the idle event.
func MainEventsCleared() Event { return Event{Kind: EventMainEventsCleared} }

// IsExit reports whether the event terminates the event loop:
// a close request or an Escape key press.
func (e Event) IsExit() bool {
	switch e.Kind {
	case EventCloseRequested:
		return true
	case EventKeyboardInput:
		return e.State == KeyPressed && e.Key == gpucontext.KeyEscape
	default:
		return false
	}
}

func (e Event) String() string {
	switch e.Kind {
	case EventResized, EventScaleFactorChanged:
		return fmt.Sprintf("%s(%dx%d)", e.Kind, e.Width, e.Height)
	case EventKeyboardInput:
		state := "released"
		if e.State == KeyPressed {
			state = "pressed"
		}
		return fmt.Sprintf("%s(%d %s)", e.Kind, e.Key, state)
	default:
		return e.Kind.String()
	}
}
