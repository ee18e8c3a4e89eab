package window

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/triangle"
)

// idleTimeout bounds how long a pump blocks while the window is iconified.
const idleTimeout = 0.25 // seconds

// Options configures the window.
type Options struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// Window is a GLFW window and its pending event queue.
type Window struct {
	win   *glfw.Window
	queue []triangle.Event

	// pollEvents runs the platform event pump; callbacks fire from inside it.
	pollEvents func()
	release    func()

	redraw bool
	closed bool
}

// Open initializes GLFW and creates a window without a client API.
// Must be called on the main OS thread.
func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("window: invalid size %dx%d", opts.Width, opts.Height)
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	gw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create: %w", err)
	}

	w := &Window{win: gw}
	w.pollEvents = func() {
		if gw.GetAttrib(glfw.Iconified) == glfw.True {
			glfw.WaitEventsTimeout(idleTimeout)
		} else {
			glfw.PollEvents()
		}
	}
	w.release = func() {
		gw.Destroy()
		glfw.Terminate()
	}
	w.installCallbacks()

	fw, fh := w.Size()
	triangle.Logger().Info("window opened", "title", opts.Title, "width", fw, "height", fh)
	return w, nil
}

func (w *Window) installCallbacks() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(triangle.Resized(clampSize(width), clampSize(height)))
	})
	w.win.SetContentScaleCallback(func(gw *glfw.Window, _, _ float32) {
		width, height := gw.GetFramebufferSize()
		w.push(triangle.ScaleFactorChanged(clampSize(width), clampSize(height)))
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := mapKey(key)
		if !ok {
			return
		}
		w.push(triangle.KeyboardInput(k, mapAction(action)))
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.push(triangle.CloseRequested())
	})
	w.win.SetRefreshCallback(func(_ *glfw.Window) {
		w.RequestRedraw()
	})
}

func (w *Window) push(e triangle.Event) {
	w.queue = append(w.queue, e)
}

// NextEvent returns the next event, pumping the platform queue when
// nothing is pending. A pending redraw is delivered before the next pump.
// Every pump ends with EventMainEventsCleared.
func (w *Window) NextEvent(ctx context.Context) (triangle.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return triangle.Event{}, err
		}
		if w.closed {
			return triangle.CloseRequested(), nil
		}
		if len(w.queue) > 0 {
			e := w.queue[0]
			w.queue = w.queue[1:]
			return e, nil
		}
		if w.redraw {
			w.redraw = false
			return triangle.RedrawRequested(), nil
		}
		w.pump()
	}
}

func (w *Window) pump() {
	w.pollEvents()
	w.push(triangle.MainEventsCleared())
}

// RequestRedraw schedules one EventRedrawRequested.
func (w *Window) RequestRedraw() {
	w.redraw = true
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	return w.win.GetFramebufferSize()
}

// FramebufferSize returns the framebuffer size in pixels. Zero while
// minimized.
func (w *Window) FramebufferSize() (width, height uint32) {
	fw, fh := w.Size()
	return clampSize(fw), clampSize(fh)
}

// Close destroys the window and terminates GLFW. Safe to call multiple times.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.release != nil {
		w.release()
	}
}

func clampSize(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
