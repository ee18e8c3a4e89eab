// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/triangle"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrInvalidSize is returned when configuring with a zero dimension.
	ErrInvalidSize = errors.New("surface: width and height must be positive")

	// ErrNotConfigured is returned when acquiring before Configure.
	ErrNotConfigured = errors.New("surface: not configured")

	// ErrDestroyed is returned when using a destroyed surface.
	ErrDestroyed = errors.New("surface: destroyed")
)

// Classify maps a backend error onto the frame error taxonomy.
// Errors already carrying a triangle sentinel are returned unchanged.
// Unknown errors are returned as-is and are treated as transient.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, triangle.ErrSurfaceLost),
		errors.Is(err, triangle.ErrOutOfMemory),
		errors.Is(err, triangle.ErrSurfaceTimeout):
		return err
	case errors.Is(err, hal.ErrSurfaceLost), errors.Is(err, hal.ErrSurfaceOutdated):
		return fmt.Errorf("%w: %w", triangle.ErrSurfaceLost, err)
	case errors.Is(err, hal.ErrDeviceOutOfMemory):
		return fmt.Errorf("%w: %w", triangle.ErrOutOfMemory, err)
	case errors.Is(err, hal.ErrTimeout):
		return fmt.Errorf("%w: %w", triangle.ErrSurfaceTimeout, err)
	default:
		return err
	}
}
