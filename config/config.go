// Package config loads the triangle configuration from TOML or YAML files
// and resolves it into typed options.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/gpu"
	"github.com/gogpu/triangle/surface"
)

// ErrInvalid is returned by Validate and Load for unusable values.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete program configuration.
type Config struct {
	Window Window `toml:"window" yaml:"window"`
	Render Render `toml:"render" yaml:"render"`
	Log    Log    `toml:"log" yaml:"log"`
}

// Window holds window settings. Sizes are in screen coordinates.
type Window struct {
	Title     string `toml:"title" yaml:"title"`
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Resizable bool   `toml:"resizable" yaml:"resizable"`
}

// Render holds graphics settings as names; see the resolver methods.
type Render struct {
	Variant         string `toml:"variant" yaml:"variant"`
	Backend         string `toml:"backend" yaml:"backend"`
	PresentMode     string `toml:"present_mode" yaml:"present_mode"`
	ClearColor      string `toml:"clear_color" yaml:"clear_color"`
	PowerPreference string `toml:"power_preference" yaml:"power_preference"`
	PreferSRGB      bool   `toml:"prefer_srgb" yaml:"prefer_srgb"`
}

// Log holds logging settings. Format is "text", "json" or "auto"
// (text on a terminal, JSON otherwise).
type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "triangle",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		Render: Render{
			Variant:         triangle.VariantVertexBuffer.String(),
			Backend:         "vulkan",
			PresentMode:     surface.PresentModeFifo.String(),
			ClearColor:      "black",
			PowerPreference: "high-performance",
		},
		Log: Log{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := c.Variant(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Backend(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.PresentMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.ClearColor(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := gpu.ParsePowerPreference(c.Render.PowerPreference); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Variant resolves the render variant.
func (c Config) Variant() (triangle.Variant, error) {
	return triangle.ParseVariant(c.Render.Variant)
}

// Backend resolves the HAL backend.
func (c Config) Backend() (gputypes.Backend, error) {
	return gpu.ParseBackend(c.Render.Backend)
}

// PresentMode resolves the requested present mode.
func (c Config) PresentMode() (surface.PresentMode, error) {
	return surface.ParsePresentMode(c.Render.PresentMode)
}

// ClearColor resolves the background color.
func (c Config) ClearColor() (triangle.Color, error) {
	return triangle.ParseColor(c.Render.ClearColor)
}

// Level resolves the log level: debug, info, warn or error.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return l, nil
}

// GPUOptions resolves the render section into graphics context options.
// Call Validate first; unresolvable values fall back to the defaults.
func (c Config) GPUOptions() gpu.Options {
	opts := gpu.DefaultOptions()
	if v, err := c.Variant(); err == nil {
		opts.Variant = v
	}
	if b, err := c.Backend(); err == nil {
		opts.Backend = b
	}
	if m, err := c.PresentMode(); err == nil {
		opts.PresentMode = m
	}
	if col, err := c.ClearColor(); err == nil {
		opts.ClearColor = col
	}
	if p, err := gpu.ParsePowerPreference(c.Render.PowerPreference); err == nil {
		opts.PowerPreference = p
	}
	opts.PreferSRGB = c.Render.PreferSRGB
	return opts
}
