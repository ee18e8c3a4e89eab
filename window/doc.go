// Package window opens a desktop window with GLFW and turns its callbacks
// into a sequential stream of triangle events.
//
// GLFW must be driven from the main OS thread. Programs lock it in init:
//
//	func init() { runtime.LockOSThread() }
//
// The window is created with no client API; the GPU surface is created
// from [Window.NativeHandles] by the gpu package.
package window
