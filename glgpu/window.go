// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions are the options for [NewWindow].
type WindowOptions struct {

	// Title is the window title.
	Title string

	// Size is the window size in screen coordinates.
	Size image.Point

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool

	// Resizable allows the user to resize the window.
	Resizable bool
}

// Window is a glfw window with a current OpenGL 4.1 core context.
type Window struct {
	glw *glfw.Window

	// OnResize, if set, is called with the new framebuffer size.
	OnResize func(size image.Point)
}

// NewWindow initializes glfw, opens a window with an OpenGL 4.1 core
// context, makes the context current and loads the GL functions.
// Pressing Escape requests the window to close.
// IMPORTANT: must be called on the main initial thread!
func NewWindow(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	glw.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{glw: glw}
	glw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.SetShouldClose(true)
		}
	})
	glw.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		if w.OnResize != nil {
			w.OnResize(image.Point{width, height})
		}
	})

	gv, sv, rn := w.Version()
	slog.Info("glgpu: OpenGL context ready", "version", gv, "glsl", sv, "renderer", rn, "glfw", glfw.GetVersionString())
	return w, nil
}

// Version returns the OpenGL version, shading language version
// and renderer strings of the current context.
func (w *Window) Version() (version, glsl, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER))
}

// FramebufferSize returns the current framebuffer size in pixels.
func (w *Window) FramebufferSize() image.Point {
	x, y := w.glw.GetFramebufferSize()
	return image.Point{x, y}
}

// ShouldClose reports whether the user has requested the window to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose sets the close request flag.
func (w *Window) SetShouldClose(v bool) {
	w.glw.SetShouldClose(v)
}

// SwapBuffers swaps the front and back buffers, blocking for vsync if enabled.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Terminate destroys the window and shuts down glfw -- call as last
// thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func (w *Window) Terminate() {
	w.glw.Destroy()
	glfw.Terminate()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
