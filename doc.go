// Package triangle draws the classic WebGPU "hello triangle" into a native
// window.
//
// # Overview
//
// triangle is the smallest complete GoGPU program: it opens a window, picks a
// GPU adapter compatible with the window surface, opens a device and queue,
// builds one fixed render pipeline and, on every redraw, clears the surface
// and draws a single hard-coded triangle. It is built on the Pure Go WebGPU
// HAL (gogpu/wgpu) and glfw for windowing.
//
// # Quick Start
//
//	go run github.com/gogpu/triangle/cmd/triangle -variant vertex-buffer
//
// # Variants
//
// The program ships the three shapes a hello-triangle tutorial goes through:
//
//   - clear: no pipeline, the surface is only cleared
//   - shader: vertices are generated in the vertex shader from vertex_index
//   - vertex-buffer: three [Vertex] values are uploaded to a vertex buffer
//
// # Architecture
//
// The repository is organized into:
//   - triangle (this package): vertices, events, colors, errors, logging
//   - surface: surface configuration, frame acquisition and presentation
//   - render: shaders, pipeline, vertex buffer and per-frame encoding
//   - gpu: the graphics context owning device, queue, surface and pipeline
//   - window: glfw window producing a sequential [Event] stream
//   - app: the single-threaded event dispatch loop
//   - config: TOML/YAML configuration
//
// Control flow is linear: window events feed the loop in [app], which calls
// into the [gpu] context, which records the [render] pipeline into a frame
// acquired from the [surface].
//
// # Logging
//
// triangle produces no log output by default. Call [SetLogger] to enable it.
package triangle

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
