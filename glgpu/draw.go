// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/glbasics/quad/glcheck"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawing provides commonly-used GPU drawing functions
// All operate on the current context with current program, target, etc
type Drawing struct {
	Guard *glcheck.Guard
}

// SetClearColor sets the color used by Clear.
func (dr *Drawing) SetClearColor(c mgl32.Vec4) {
	dr.Guard.Call("gl.ClearColor(r, g, b, a)", func() { gl.ClearColor(c[0], c[1], c[2], c[3]) })
}

// Clear clears the given properties of the current render target
func (dr *Drawing) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	dr.Guard.Call("gl.Clear(bits)", func() { gl.Clear(bits) })
}

// Viewport sets the viewport to the given framebuffer size.
func (dr *Drawing) Viewport(width, height int) {
	dr.Guard.Call("gl.Viewport(0, 0, w, h)", func() { gl.Viewport(0, 0, int32(width), int32(height)) })
}

// TrianglesIndexed draws count indexes of the bound index buffer
// as triangles, using the bound vertex array and active program.
func (dr *Drawing) TrianglesIndexed(count int) {
	dr.Guard.Call("gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)", func() {
		gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
	})
}
