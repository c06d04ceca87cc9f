// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/glbasics/quad/glcheck"
	"github.com/glbasics/quad/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program.
type Program struct {
	init     bool
	handle   uint32
	guard    *glcheck.Guard
	uniforms map[string]int32
}

// NewProgram compiles every stage of src and links them into a program.
// It refuses to link if any stage is missing or fails to compile,
// returning all of the stage errors. Context must be current.
func NewProgram(g *glcheck.Guard, src shader.Source) (*Program, error) {
	if err := src.Validate(); err != nil {
		return nil, errors.Log(err)
	}
	var shs []*Shader
	var errs []error
	for st := shader.VertexStage; st < shader.StagesN; st++ {
		sh, err := CompileShader(g, st, src.Stage(st))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		shs = append(shs, sh)
	}
	if len(errs) > 0 {
		for _, sh := range shs {
			sh.Delete()
		}
		return nil, errors.Join(errs...)
	}

	handle, _ := glcheck.Call1(g, "gl.CreateProgram()", gl.CreateProgram)
	if handle == 0 {
		for _, sh := range shs {
			sh.Delete()
		}
		return nil, errors.Log(errNoHandle("program"))
	}
	for _, sh := range shs {
		g.Call("gl.AttachShader(program, shader)", func() { gl.AttachShader(handle, sh.handle) })
	}
	g.Call("gl.LinkProgram(program)", func() { gl.LinkProgram(handle) })
	g.Call("gl.ValidateProgram(program)", func() { gl.ValidateProgram(handle) })

	for _, sh := range shs {
		g.Call("gl.DetachShader(program, shader)", func() { gl.DetachShader(handle, sh.handle) })
		sh.Delete()
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)

		err := &LinkError{Log: strings.TrimRight(lg, "\x00")}
		slog.Error("glgpu: program link failed", "log", err.Log)
		return nil, err
	}
	return &Program{init: true, handle: handle, guard: g, uniforms: map[string]int32{}}, nil
}

// Handle returns the GPU handle for the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Activate makes this the program used for drawing.
func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	pr.guard.Call("gl.UseProgram(program)", func() { gl.UseProgram(pr.handle) })
}

// UniformLocation returns the location of the named uniform,
// or -1 if the program has no active uniform of that name.
// Locations are cached after the first lookup.
// A program that is not linked has no uniforms.
func (pr *Program) UniformLocation(name string) int32 {
	if !pr.init {
		return -1
	}
	if loc, ok := pr.uniforms[name]; ok {
		return loc
	}
	cname := gl.Str(name + "\x00")
	loc, _ := glcheck.Call1(pr.guard, "gl.GetUniformLocation(program, \""+name+"\")", func() int32 {
		return gl.GetUniformLocation(pr.handle, cname)
	})
	if pr.uniforms == nil {
		pr.uniforms = map[string]int32{}
	}
	pr.uniforms[name] = loc
	return loc
}

// SetColor sets the named vec4 uniform of the active program.
// It returns false if the program has no such uniform.
func (pr *Program) SetColor(name string, c mgl32.Vec4) bool {
	loc := pr.UniformLocation(name)
	if loc < 0 {
		return false
	}
	pr.guard.Call("gl.Uniform4f(\""+name+"\", r, g, b, a)", func() { gl.Uniform4f(loc, c[0], c[1], c[2], c[3]) })
	return true
}

// Delete deletes the GPU resources of the program.
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	pr.guard.Call("gl.DeleteProgram(program)", func() { gl.DeleteProgram(pr.handle) })
	pr.handle = 0
	pr.init = false
}
