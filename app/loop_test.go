package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/triangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errScriptDone = errors.New("script exhausted")

// scriptSource replays a fixed list of events.
type scriptSource struct {
	events   []triangle.Event
	next     int
	redraws  int
	recorder *recorder
}

func (s *scriptSource) NextEvent(ctx context.Context) (triangle.Event, error) {
	if err := ctx.Err(); err != nil {
		return triangle.Event{}, err
	}
	if s.next >= len(s.events) {
		return triangle.Event{}, errScriptDone
	}
	e := s.events[s.next]
	s.next++
	return e, nil
}

func (s *scriptSource) RequestRedraw() {
	s.redraws++
	s.recorder.add("RequestRedraw")
}

type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// fakeRenderer mirrors the graphics context's resize rule and returns
// scripted Render errors in order.
type fakeRenderer struct {
	recorder      *recorder
	width, height uint32
	renderErrs    []error
	consume       func(triangle.Event) bool
}

func (f *fakeRenderer) Input(e triangle.Event) bool {
	return f.consume != nil && f.consume(e)
}

func (f *fakeRenderer) Update() {}

func (f *fakeRenderer) Resize(w, h uint32) {
	f.recorder.add("Resize(%d,%d)", w, h)
	if w == 0 || h == 0 {
		return
	}
	f.width, f.height = w, h
}

func (f *fakeRenderer) Render() error {
	f.recorder.add("Render")
	if len(f.renderErrs) == 0 {
		return nil
	}
	err := f.renderErrs[0]
	f.renderErrs = f.renderErrs[1:]
	return err
}

func (f *fakeRenderer) Size() (uint32, uint32) { return f.width, f.height }

func newLoop(events []triangle.Event, renderErrs ...error) (*Loop, *fakeRenderer, *scriptSource, *recorder) {
	rec := &recorder{}
	src := &scriptSource{events: events, recorder: rec}
	r := &fakeRenderer{recorder: rec, width: 800, height: 600, renderErrs: renderErrs}
	return &Loop{Source: src, Renderer: r}, r, src, rec
}

func TestLoopExitEvents(t *testing.T) {
	tests := []struct {
		name string
		exit triangle.Event
	}{
		{"close requested", triangle.CloseRequested()},
		{"escape pressed", triangle.KeyboardInput(gpucontext.KeyEscape, triangle.KeyPressed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []triangle.Event{
				triangle.RedrawRequested(),
				tt.exit,
				triangle.RedrawRequested(),
				triangle.CloseRequested(),
			}
			loop, _, src, rec := newLoop(events)

			require.NoError(t, loop.Run(context.Background()))
			assert.Equal(t, []string{"Render"}, rec.calls, "no frame after exit")
			assert.Equal(t, 2, src.next, "loop must stop at the exit event")
			assert.Equal(t, uint64(1), loop.Stats().Frames)
		})
	}
}

func TestLoopIgnoresOtherKeys(t *testing.T) {
	events := []triangle.Event{
		triangle.KeyboardInput(gpucontext.KeyEscape, triangle.KeyReleased),
		triangle.KeyboardInput(gpucontext.KeySpace, triangle.KeyPressed),
		triangle.RedrawRequested(),
		triangle.CloseRequested(),
	}
	loop, _, _, rec := newLoop(events)

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []string{"Render"}, rec.calls)
}

func TestLoopResizeEvents(t *testing.T) {
	events := []triangle.Event{
		triangle.Resized(1024, 768),
		triangle.Resized(0, 0),
		triangle.ScaleFactorChanged(2048, 1536),
		triangle.Resized(640, 0),
		triangle.CloseRequested(),
	}
	loop, r, _, rec := newLoop(events)

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []string{
		"Resize(1024,768)",
		"Resize(0,0)",
		"Resize(2048,1536)",
		"Resize(640,0)",
	}, rec.calls)
	w, h := r.Size()
	assert.Equal(t, uint32(2048), w)
	assert.Equal(t, uint32(1536), h)
}

func TestLoopIdleRequestsRedraw(t *testing.T) {
	events := []triangle.Event{
		triangle.MainEventsCleared(),
		triangle.RedrawRequested(),
		triangle.MainEventsCleared(),
		triangle.CloseRequested(),
	}
	loop, _, src, rec := newLoop(events)

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, 2, src.redraws)
	assert.Equal(t, []string{"RequestRedraw", "Render", "RequestRedraw"}, rec.calls)
}

func TestLoopSurfaceLostReconfiguresBeforeNextFrame(t *testing.T) {
	lost := fmt.Errorf("%w: acquire", triangle.ErrSurfaceLost)
	events := []triangle.Event{
		triangle.Resized(1280, 720),
		triangle.RedrawRequested(),
		triangle.RedrawRequested(),
		triangle.CloseRequested(),
	}
	loop, _, _, rec := newLoop(events, lost)

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []string{
		"Resize(1280,720)",
		"Render",
		"Resize(1280,720)",
		"Render",
	}, rec.calls)

	s := loop.Stats()
	assert.Equal(t, uint64(1), s.Frames)
	assert.Equal(t, uint64(1), s.DroppedFrames)
	assert.Equal(t, uint64(1), s.Reconfigures)
}

func TestLoopOutOfMemoryTerminates(t *testing.T) {
	events := []triangle.Event{
		triangle.RedrawRequested(),
		triangle.RedrawRequested(),
		triangle.CloseRequested(),
	}
	loop, _, src, rec := newLoop(events, triangle.ErrOutOfMemory)

	err := loop.Run(context.Background())
	require.ErrorIs(t, err, triangle.ErrOutOfMemory)
	assert.True(t, triangle.IsFatal(err))
	assert.Equal(t, []string{"Render"}, rec.calls)
	assert.Equal(t, 1, src.next, "no event is processed after out-of-memory")
}

func TestLoopTransientErrorsDropFrame(t *testing.T) {
	events := []triangle.Event{
		triangle.RedrawRequested(),
		triangle.RedrawRequested(),
		triangle.RedrawRequested(),
		triangle.CloseRequested(),
	}
	loop, _, _, rec := newLoop(events, triangle.ErrSurfaceTimeout, errors.New("device hiccup"))

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []string{"Render", "Render", "Render"}, rec.calls, "no retries, no reconfigure")

	s := loop.Stats()
	assert.Equal(t, uint64(1), s.Frames)
	assert.Equal(t, uint64(2), s.DroppedFrames)
	assert.Zero(t, s.Reconfigures)
}

func TestLoopInputConsumes(t *testing.T) {
	events := []triangle.Event{
		triangle.CloseRequested(),
		triangle.RedrawRequested(),
		triangle.CloseRequested(),
	}
	loop, r, src, rec := newLoop(events)
	consumed := 0
	r.consume = func(triangle.Event) bool {
		consumed++
		return consumed == 1
	}

	require.NoError(t, loop.Run(context.Background()))
	assert.Equal(t, []string{"Render"}, rec.calls)
	assert.Equal(t, 3, src.next)
}

func TestLoopContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loop, _, _, rec := newLoop([]triangle.Event{triangle.RedrawRequested()})

	require.NoError(t, loop.Run(ctx))
	assert.Empty(t, rec.calls)
}

func TestLoopSourceError(t *testing.T) {
	loop, _, _, _ := newLoop(nil)
	assert.ErrorIs(t, loop.Run(context.Background()), errScriptDone)
}
