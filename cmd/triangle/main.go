// Command triangle opens a window and draws a triangle with WebGPU.
//
// Close the window or press Escape to exit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/app"
	"github.com/gogpu/triangle/config"
	"golang.org/x/term"
)

func init() {
	// GLFW and the surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "triangle:", err)
		return 1
	}

	logger, err := newLogger(cfg.Log, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		fmt.Fprintln(os.Stderr, "triangle:", err)
		return 1
	}
	triangle.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Launch(ctx, cfg); err != nil {
		logger.Error("triangle failed", "error", err, "fatal", triangle.IsFatal(err))
		return 1
	}
	return 0
}

// parseConfig loads the optional config file, then applies flags that were
// set explicitly on top of it.
func parseConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("triangle", flag.ContinueOnError)
	var (
		path        = fs.String("config", "", "config file (.toml, .yaml)")
		width       = fs.Int("width", 0, "window width")
		height      = fs.Int("height", 0, "window height")
		title       = fs.String("title", "", "window title")
		variant     = fs.String("variant", "", "what to draw: vertex-buffer, shader, clear")
		backend     = fs.String("backend", "", "GPU backend: vulkan, metal, dx12, gl")
		presentMode = fs.String("present-mode", "", "fifo, fifo-relaxed, mailbox, immediate")
		clearColor  = fs.String("clear", "", "background color (#rrggbb or name)")
		logLevel    = fs.String("log-level", "", "debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "title":
			cfg.Window.Title = *title
		case "variant":
			cfg.Render.Variant = *variant
		case "backend":
			cfg.Render.Backend = *backend
		case "present-mode":
			cfg.Render.PresentMode = *presentMode
		case "clear":
			cfg.Render.ClearColor = *clearColor
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	return cfg, cfg.Validate()
}
