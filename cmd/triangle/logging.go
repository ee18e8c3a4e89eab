package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/triangle/config"
)

// newLogger builds the process logger. "auto" picks text for terminals and
// JSON otherwise.
func newLogger(c config.Log, w io.Writer, terminal bool) (*slog.Logger, error) {
	level, err := config.Config{Log: c}.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.Format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "auto":
		if terminal {
			return slog.New(slog.NewTextHandler(w, opts)), nil
		}
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q", c.Format)
	}
}
