// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quad opens a window and renders a colored quad with a shader
// program loaded from a tagged .shader file.
package main

import (
	"embed"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/glbasics/quad/anim"
	"github.com/glbasics/quad/glcheck"
	"github.com/glbasics/quad/glgpu"
	"github.com/glbasics/quad/logx"
	"github.com/glbasics/quad/mesh"
	"github.com/glbasics/quad/shader"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed res/shaders/*.shader
var resources embed.FS

// colorUniform is the uniform that receives the animated color.
const colorUniform = "u_Color"

// baseColor is the initial value of the color uniform.
var baseColor = mgl32.Vec4{0.2, 0.3, 0.8, 1.0}

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// Config is the configuration for the quad command.
type Config struct {

	// Shader is the shader file to render with. It can be a file path or
	// the name of a built-in shader: Basic (uniform color) or
	// VertexColor (per-vertex colors).
	Shader string `posarg:"0" required:"-" default:"Basic"`

	// Mesh is an optional TOML mesh file to draw instead of the built-in quad.
	Mesh string `flag:"m,mesh"`

	// Title is the window title.
	Title string `default:"Hello World"`

	// Width is the window width.
	Width int `default:"640"`

	// Height is the window height.
	Height int `default:"480"`

	// Strict only accepts #shader tags at the start of a line, followed by
	// the stage keyword. Otherwise any line containing #shader is a tag.
	Strict bool `default:"true"`

	// Includes expands #include "file" lines in the shader file,
	// relative to the directory of the file.
	Includes bool

	// Animate pulses the red channel of the u_Color uniform.
	Animate bool `default:"true"`

	// VSync synchronizes frames with the display refresh rate.
	VSync bool `default:"true"`

	// Halt stops the program on the first OpenGL error.
	Halt bool `default:"true"`

	// Text prints OpenGL errors as plain text instead of log records.
	Text bool

	// Frames is the number of frames to render before exiting;
	// 0 renders until the window is closed.
	Frames int

	// Verbose logs debug messages, including stale OpenGL errors.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	opts := cli.DefaultOptions("quad", "Quad renders a colored quad with a shader loaded from a tagged .shader file.")
	cli.Run(opts, &Config{}, Run)
}

// Run opens the window and renders until it is closed.
func Run(c *Config) error { //cli:cmd -root
	logx.Init(c.Verbose)

	src, err := loadShader(c)
	if err != nil {
		return errors.Log(err)
	}
	ms := mesh.Default()
	if c.Mesh != "" {
		ms, err = mesh.Open(c.Mesh)
		if err != nil {
			return errors.Log(err)
		}
	}

	win, err := glgpu.NewWindow(glgpu.WindowOptions{
		Title:     c.Title,
		Size:      image.Point{c.Width, c.Height},
		VSync:     c.VSync,
		Resizable: true,
	})
	if err != nil {
		return err
	}
	defer win.Terminate()

	var handler glcheck.Handler
	if c.Text {
		handler = glcheck.TextHandler(os.Stderr)
	}
	g := glgpu.NewGuard(c.Halt, handler)

	va := glgpu.NewVertexArray(g)
	defer va.Delete()
	vb := glgpu.NewVertexBuffer(g, ms.Interleave())
	defer vb.Delete()
	va.AddBuffer(vb, ms.Layout())
	ib := glgpu.NewIndexBuffer(g, ms.Indices)
	defer ib.Delete()

	pr, err := glgpu.NewProgram(g, src)
	if err != nil {
		return err
	}
	defer pr.Delete()
	pr.Activate()

	dr := &glgpu.Drawing{Guard: g}
	win.OnResize = func(size image.Point) { dr.Viewport(size.X, size.Y) }
	sz := win.FramebufferSize()
	dr.Viewport(sz.X, sz.Y)

	pulse := anim.NewPulse(0, 0.05)
	hasColor := pr.SetColor(colorUniform, baseColor)
	if !hasColor {
		slog.Info("quad: shader has no color uniform", "uniform", colorUniform)
	}

	for frame := 0; !win.ShouldClose(); frame++ {
		if c.Frames > 0 && frame >= c.Frames {
			break
		}
		dr.Clear(true, false)
		if hasColor && c.Animate {
			pulse.Next()
			pr.SetColor(colorUniform, pulse.Apply(baseColor))
		}
		dr.TrianglesIndexed(ib.Len())
		win.SwapBuffers()
		win.PollEvents()
	}
	return nil
}

// loadShader splits the configured shader file. A bare name with no
// directory or extension selects a built-in shader.
func loadShader(c *Config) (shader.Source, error) {
	var p shader.Parser
	if !c.Strict {
		p.Match = shader.MatchSubstring
	}
	if filepath.Base(c.Shader) == c.Shader && filepath.Ext(c.Shader) == "" {
		return p.ParseFS(resources, "res/shaders/"+c.Shader+".shader")
	}
	if c.Includes {
		p.Includes = os.DirFS(filepath.Dir(c.Shader))
	}
	return p.ParseFile(c.Shader)
}
