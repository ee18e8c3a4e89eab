package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/render"
	"github.com/gogpu/triangle/surface"
	"github.com/gogpu/wgpu/hal"

	// Register Vulkan backend.
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Context is the single-owner graphics state: device, queue, surface,
// surface configuration and the triangle pipeline.
//
// Context is NOT thread-safe. Use it from the goroutine that runs the event
// loop.
type Context struct {
	// Owned only when created by New.
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	owned    bool

	surface surface.Surface
	config  surface.Config

	pipeline *render.Pipeline
	vertices *render.VertexBuffer
	encoder  *render.FrameEncoder

	clear  gputypes.Color
	frames uint64
	closed bool
}

// New creates the graphics context for win. It blocks until the device is
// ready. Any error is fatal for the caller and is wrapped in one of
// triangle.ErrNoBackend, ErrNoAdapter, ErrDeviceCreation, ErrNoSurfaceFormat
// or ErrUnsupportedPlatform.
func New(win NativeWindow, opts Options) (*Context, error) {
	backend, ok := hal.GetBackend(opts.Backend)
	if !ok {
		return nil, fmt.Errorf("%w: %v", triangle.ErrNoBackend, opts.Backend)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", triangle.ErrNoBackend, err)
	}

	display, window, err := win.NativeHandles()
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	halSurface, err := instance.CreateSurface(display, window)
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("%w: create surface: %w", triangle.ErrNoAdapter, err)
	}

	adapters := instance.EnumerateAdapters(halSurface)
	selected := SelectAdapter(adapters, opts.PowerPreference)
	if selected == nil {
		halSurface.Destroy()
		instance.Destroy()
		return nil, triangle.ErrNoAdapter
	}
	triangle.Logger().Info("adapter selected",
		"name", selected.Info.Name,
		"type", selected.Info.DeviceType,
		"backend", opts.Backend)

	caps := selected.Adapter.SurfaceCapabilities(halSurface)
	if caps == nil {
		halSurface.Destroy()
		instance.Destroy()
		return nil, fmt.Errorf("%w: adapter cannot present to surface", triangle.ErrNoAdapter)
	}
	format, ok := surface.ChooseFormat(caps.Formats, opts.PreferSRGB)
	if !ok {
		halSurface.Destroy()
		instance.Destroy()
		return nil, triangle.ErrNoSurfaceFormat
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		halSurface.Destroy()
		instance.Destroy()
		return nil, fmt.Errorf("%w: %w", triangle.ErrDeviceCreation, err)
	}

	opts.PresentMode = surface.SupportedPresentMode(caps.PresentModes, opts.PresentMode)
	width, height := win.FramebufferSize()

	surf := surface.NewHAL(halSurface, openDev.Device, openDev.Queue)
	c, err := NewWithDevice(openDev.Device, openDev.Queue, surf, format, width, height, opts)
	if err != nil {
		surf.Destroy()
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	c.instance = instance
	c.owned = true
	return c, nil
}

// NewWithDevice builds a context around an existing device, queue and
// surface. The device and queue are borrowed and outlive the context; the
// surface is destroyed by Close.
//
// A zero width or height leaves the surface unconfigured until the first
// non-zero Resize.
func NewWithDevice(device hal.Device, queue hal.Queue, surf surface.Surface,
	format gputypes.TextureFormat, width, height uint32, opts Options) (*Context, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("%w: nil device or queue", triangle.ErrDeviceCreation)
	}
	if surf == nil {
		return nil, fmt.Errorf("gpu: nil surface")
	}

	c := &Context{
		device:  device,
		queue:   queue,
		surface: surf,
		config: surface.Config{
			Format:      format,
			Width:       width,
			Height:      height,
			PresentMode: opts.PresentMode,
		},
		clear: opts.ClearColor.GPU(),
	}

	if err := c.build(opts.Variant); err != nil {
		c.releaseDrawing()
		return nil, fmt.Errorf("%w: %w", triangle.ErrDeviceCreation, err)
	}

	if c.config.Valid() {
		if err := surf.Configure(c.config); err != nil {
			c.releaseDrawing()
			return nil, err
		}
	} else {
		triangle.Logger().Debug("initial window size is empty, surface left unconfigured",
			"width", width, "height", height)
	}
	return c, nil
}

// build creates the per-variant drawing resources.
func (c *Context) build(variant triangle.Variant) error {
	enc, err := render.NewFrameEncoder(c.device, c.queue)
	if err != nil {
		return err
	}
	c.encoder = enc

	if variant.HasPipeline() {
		c.pipeline, err = render.NewPipeline(c.device, c.config.Format, variant)
		if err != nil {
			return err
		}
	}
	if variant.HasVertexBuffer() {
		c.vertices, err = render.NewVertexBuffer(c.device, c.queue, triangle.Triangle())
		if err != nil {
			return err
		}
	}
	return nil
}

// Resize applies a new framebuffer size. A zero width or height is ignored:
// minimized windows report 0x0 and such a surface cannot be configured.
// Otherwise the stored configuration takes the new size and the surface is
// reconfigured before Resize returns.
func (c *Context) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		triangle.Logger().Debug("resize ignored", "width", width, "height", height)
		return
	}
	c.config = c.config.WithSize(width, height)
	if err := c.surface.Configure(c.config); err != nil {
		triangle.Logger().Warn("surface reconfigure failed", "config", c.config.String(), "error", err)
	}
}

// Render draws and presents one frame.
//
// Errors are classified: triangle.ErrSurfaceLost means the caller should
// Resize with the current size, triangle.ErrOutOfMemory is fatal, anything
// else drops this frame only. Render never retries.
func (c *Context) Render() error {
	if c.closed {
		return surface.ErrDestroyed
	}
	frame, err := c.surface.Acquire()
	if err != nil {
		return surface.Classify(err)
	}

	draws := render.DrawList{Pipeline: c.pipeline, Vertices: c.vertices}
	if err := c.encoder.Encode(frame.View, c.clear, draws); err != nil {
		c.surface.Discard(frame)
		return surface.Classify(err)
	}
	if err := c.surface.Present(frame); err != nil {
		return surface.Classify(err)
	}
	c.frames++
	if frame.Suboptimal {
		triangle.Logger().Debug("suboptimal frame presented", "frame", c.frames)
	}
	return nil
}

// Input offers an event to the context before the event loop dispatches it.
// It reports whether the event was consumed. The triangle consumes nothing.
func (c *Context) Input(triangle.Event) bool { return false }

// Update advances per-frame state before Render. The triangle is static.
func (c *Context) Update() {}

// Size returns the configured surface size in pixels.
func (c *Context) Size() (width, height uint32) {
	return c.config.Width, c.config.Height
}

// Config returns the current surface configuration.
func (c *Context) Config() surface.Config { return c.config }

// Frames returns the number of frames presented.
func (c *Context) Frames() uint64 { return c.frames }

// Close waits for the GPU to go idle, then releases everything the context
// owns in reverse creation order. Safe to call multiple times.
func (c *Context) Close() {
	if c == nil || c.closed {
		return
	}
	c.closed = true
	// A frame that timed out in Render may still be executing.
	if err := c.device.WaitIdle(); err != nil {
		triangle.Logger().Warn("wait idle before close", "error", err)
	}
	c.releaseDrawing()
	c.surface.Destroy()
	if c.owned {
		c.device.Destroy()
		c.instance.Destroy()
	}
	triangle.Logger().Debug("graphics context closed", "frames", c.frames)
}

func (c *Context) releaseDrawing() {
	if c.vertices != nil {
		c.vertices.Destroy()
		c.vertices = nil
	}
	if c.pipeline != nil {
		c.pipeline.Destroy()
		c.pipeline = nil
	}
	if c.encoder != nil {
		c.encoder.Destroy()
		c.encoder = nil
	}
}
