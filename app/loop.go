// Package app runs the event dispatch loop: a single goroutine that takes
// events from a window in order and drives the graphics context.
package app

import (
	"context"
	"errors"

	"github.com/gogpu/triangle"
)

// EventSource supplies window events in delivery order.
type EventSource interface {
	// NextEvent blocks until an event is available or ctx is done.
	NextEvent(ctx context.Context) (triangle.Event, error)

	// RequestRedraw schedules an EventRedrawRequested.
	RequestRedraw()
}

// Renderer is the graphics context as seen by the loop.
type Renderer interface {
	// Input may consume an event before it is dispatched.
	Input(e triangle.Event) bool
	Update()
	Resize(width, height uint32)
	Render() error
	Size() (width, height uint32)
}

// Stats counts what the loop did.
type Stats struct {
	Events        uint64
	Frames        uint64
	DroppedFrames uint64
	Reconfigures  uint64
}

// Loop dispatches events from Source to Renderer.
type Loop struct {
	Source   EventSource
	Renderer Renderer

	stats Stats
}

// Run processes events until the window is closed, Escape is pressed or
// ctx is cancelled, all of which return nil. It returns an error only when
// rendering hits an unrecoverable condition (triangle.ErrOutOfMemory) or
// the event source fails.
func (l *Loop) Run(ctx context.Context) error {
	log := triangle.Logger()
	for {
		e, err := l.Source.NextEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info("event loop cancelled", "frames", l.stats.Frames)
				return nil
			}
			return err
		}
		l.stats.Events++

		if l.Renderer.Input(e) {
			continue
		}
		if e.IsExit() {
			log.Info("exit requested", "event", e.String(), "frames", l.stats.Frames)
			return nil
		}

		switch e.Kind {
		case triangle.EventResized, triangle.EventScaleFactorChanged:
			l.Renderer.Resize(e.Width, e.Height)
		case triangle.EventRedrawRequested:
			if err := l.redraw(); err != nil {
				return err
			}
		case triangle.EventMainEventsCleared:
			l.Source.RequestRedraw()
		}
	}
}

// redraw renders one frame. Surface loss reconfigures at the current size
// before anything else happens; out-of-memory is returned; everything else
// drops the frame.
func (l *Loop) redraw() error {
	l.Renderer.Update()
	err := l.Renderer.Render()
	switch {
	case err == nil:
		l.stats.Frames++
	case errors.Is(err, triangle.ErrSurfaceLost):
		l.stats.DroppedFrames++
		l.stats.Reconfigures++
		w, h := l.Renderer.Size()
		triangle.Logger().Debug("surface lost, reconfiguring", "width", w, "height", h)
		l.Renderer.Resize(w, h)
	case errors.Is(err, triangle.ErrOutOfMemory):
		triangle.Logger().Error("out of memory, stopping", "error", err)
		return err
	default:
		l.stats.DroppedFrames++
		triangle.Logger().Warn("frame dropped", "error", err)
	}
	return nil
}

// Stats returns the counters collected so far.
func (l *Loop) Stats() Stats { return l.stats }
