package app

import (
	"context"
	"fmt"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/config"
	"github.com/gogpu/triangle/gpu"
	"github.com/gogpu/triangle/window"
)

// Launch opens the window, creates the graphics context and runs the loop
// until exit. It must be called from the main OS thread.
func Launch(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	win, err := window.Open(window.Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	gctx, err := gpu.New(win, cfg.GPUOptions())
	if err != nil {
		return fmt.Errorf("graphics init: %w", err)
	}
	defer gctx.Close()

	loop := &Loop{Source: win, Renderer: gctx}
	err = loop.Run(ctx)
	s := loop.Stats()
	triangle.Logger().Info("event loop finished",
		"events", s.Events,
		"frames", s.Frames,
		"dropped", s.DroppedFrames,
		"reconfigures", s.Reconfigures)
	return err
}
