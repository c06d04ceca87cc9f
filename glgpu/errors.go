// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/glbasics/quad/glcheck"
	"github.com/glbasics/quad/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Errors is the OpenGL error-flag queue of the current context.
// A GL context must be current on the calling thread.
var Errors glcheck.Source = glcheck.SourceFunc(func() glcheck.Code {
	return glcheck.Code(gl.GetError())
})

// NewGuard returns a guard on the current context's [Errors],
// reporting through handler (nil for the slog default).
func NewGuard(halt bool, handler glcheck.Handler) *glcheck.Guard {
	return &glcheck.Guard{Source: Errors, Handler: handler, Halt: halt}
}

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage shader.Stage

	// Log is the driver's info log for the failed compile.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glgpu: failed to compile %s shader:\n%s", e.Stage, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "glgpu: failed to link program:\n" + e.Log
}

// ErrNoHandle is returned when OpenGL returns a zero handle for a
// new object, usually because no context is current.
var ErrNoHandle = errors.New("glgpu: OpenGL returned no handle")

func errNoHandle(what string) error {
	return fmt.Errorf("glgpu: could not create %s: %w", what, ErrNoHandle)
}
