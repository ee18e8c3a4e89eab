// Package gpu owns the graphics context: adapter, device, queue, the window
// surface and the triangle pipeline.
//
// A [Context] is created once at startup by [New], which blocks until the
// platform hands back a device. Afterwards it is driven from the event loop
// goroutine only: [Context.Resize] on resize and scale-factor events,
// [Context.Render] on every redraw.
//
// Usage:
//
//	ctx, err := gpu.New(win, gpu.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err) // no adapter or device: fatal
//	}
//	defer ctx.Close()
//
//	ctx.Resize(1024, 768)
//	if err := ctx.Render(); errors.Is(err, triangle.ErrSurfaceLost) {
//	    ctx.Resize(ctx.Size())
//	}
package gpu
