// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/glbasics/quad/glcheck"
	"github.com/glbasics/quad/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader is a single compiled shader stage.
type Shader struct {
	init   bool
	handle uint32
	stage  shader.Stage
	src    string
	guard  *glcheck.Guard
}

// CompileShader compiles the source code for the given stage.
// On failure the info log is returned in a *[CompileError]
// and the shader object is released.
// Context must be current.
func CompileShader(g *glcheck.Guard, st shader.Stage, src string) (*Shader, error) {
	typ, ok := glShaders[st]
	if !ok {
		return nil, fmt.Errorf("glgpu: no OpenGL shader type for stage %s", st)
	}
	handle, _ := glcheck.Call1(g, "gl.CreateShader("+st.String()+")", func() uint32 {
		return gl.CreateShader(typ)
	})
	if handle == 0 {
		err := errNoHandle(st.String() + " shader")
		slog.Error("glgpu: shader create failed", "stage", st)
		return nil, err
	}

	csources, free := gl.Strs(src + "\x00")
	g.Call("gl.ShaderSource(shader, 1, src, nil)", func() { gl.ShaderSource(handle, 1, csources, nil) })
	free()
	g.Call("gl.CompileShader(shader)", func() { gl.CompileShader(handle) })

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)

		err := &CompileError{Stage: st, Log: strings.TrimRight(msg, "\x00")}
		slog.Error("glgpu: shader compile failed", "stage", st, "log", err.Log)
		return nil, err
	}
	return &Shader{init: true, handle: handle, stage: st, src: src, guard: g}, nil
}

// Stage returns the stage of the shader.
func (sh *Shader) Stage() shader.Stage {
	return sh.stage
}

// Handle returns the GPU handle for this shader.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Source returns the source code the shader was compiled from.
func (sh *Shader) Source() string {
	return sh.src
}

// Delete deletes the shader.
func (sh *Shader) Delete() {
	if !sh.init {
		return
	}
	sh.guard.Call("gl.DeleteShader(shader)", func() { gl.DeleteShader(sh.handle) })
	sh.handle = 0
	sh.init = false
}

var glShaders = map[shader.Stage]uint32{
	shader.VertexStage:   gl.VERTEX_SHADER,
	shader.FragmentStage: gl.FRAGMENT_SHADER,
}
