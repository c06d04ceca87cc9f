// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/glbasics/quad/glcheck"
	"github.com/glbasics/quad/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexBuffer holds interleaved float32 vertex data on the GPU
// (GL_ARRAY_BUFFER).
type VertexBuffer struct {
	init   bool
	handle uint32
	ln     int
	guard  *glcheck.Guard
}

// NewVertexBuffer creates a vertex buffer, leaves it bound,
// and transfers data to it.
func NewVertexBuffer(g *glcheck.Guard, data []float32) *VertexBuffer {
	vb := &VertexBuffer{guard: g, ln: len(data)}
	vb.Activate()
	if len(data) > 0 {
		g.Call("gl.BufferData(gl.ARRAY_BUFFER, size, data, gl.STATIC_DRAW)", func() {
			gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
		})
	}
	return vb
}

// Len returns the number of float32 values in the buffer.
func (vb *VertexBuffer) Len() int {
	return vb.ln
}

// Activate binds the buffer as the active GL_ARRAY_BUFFER,
// generating it on first use.
func (vb *VertexBuffer) Activate() {
	if !vb.init {
		vb.guard.Call("gl.GenBuffers(1, &vbo)", func() { gl.GenBuffers(1, &vb.handle) })
		vb.init = true
	}
	vb.guard.Call("gl.BindBuffer(gl.ARRAY_BUFFER, vbo)", func() { gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle) })
}

// Handle returns the unique handle for this buffer -- only valid after Activate()
func (vb *VertexBuffer) Handle() uint32 {
	return vb.handle
}

// Delete deletes the GPU resources associated with this buffer.
func (vb *VertexBuffer) Delete() {
	if !vb.init {
		return
	}
	vb.guard.Call("gl.DeleteBuffers(1, &vbo)", func() { gl.DeleteBuffers(1, &vb.handle) })
	vb.handle = 0
	vb.init = false
}

// IndexBuffer manages a buffer of indexes for index-based rendering
// (i.e., GL_ELEMENT_ARRAY_BUFFER for glDrawElements calls in OpenGL).
type IndexBuffer struct {
	init   bool
	handle uint32
	ln     int
	guard  *glcheck.Guard
}

// NewIndexBuffer creates an index buffer, leaves it bound,
// and transfers idxs to it. The vertex array it belongs to must be bound.
func NewIndexBuffer(g *glcheck.Guard, idxs []uint32) *IndexBuffer {
	ib := &IndexBuffer{guard: g, ln: len(idxs)}
	ib.Activate()
	if len(idxs) > 0 {
		g.Call("gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, size, idxs, gl.STATIC_DRAW)", func() {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idxs)*4, gl.Ptr(idxs), gl.STATIC_DRAW)
		})
	}
	return ib
}

// Len returns the number of indexes in the buffer.
func (ib *IndexBuffer) Len() int {
	return ib.ln
}

// Activate binds buffer as active one
func (ib *IndexBuffer) Activate() {
	if !ib.init {
		ib.guard.Call("gl.GenBuffers(1, &ibo)", func() { gl.GenBuffers(1, &ib.handle) })
		ib.init = true
	}
	ib.guard.Call("gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)", func() { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle) })
}

// Handle returns the unique handle for this buffer -- only valid after Activate()
func (ib *IndexBuffer) Handle() uint32 {
	return ib.handle
}

// Delete deletes the GPU resources associated with this buffer
// (requires Activate to re-establish a new one).
func (ib *IndexBuffer) Delete() {
	if !ib.init {
		return
	}
	ib.guard.Call("gl.DeleteBuffers(1, &ibo)", func() { gl.DeleteBuffers(1, &ib.handle) })
	ib.handle = 0
	ib.init = false
}

// VertexArray records the attribute layout of its vertex buffers
// and its bound index buffer.
type VertexArray struct {
	init   bool
	handle uint32
	guard  *glcheck.Guard
}

// NewVertexArray creates a vertex array and leaves it bound.
func NewVertexArray(g *glcheck.Guard) *VertexArray {
	va := &VertexArray{guard: g}
	va.Activate()
	return va
}

// Activate binds the vertex array, generating it on first use.
func (va *VertexArray) Activate() {
	if !va.init {
		va.guard.Call("gl.GenVertexArrays(1, &vao)", func() { gl.GenVertexArrays(1, &va.handle) })
		va.init = true
	}
	va.guard.Call("gl.BindVertexArray(vao)", func() { gl.BindVertexArray(va.handle) })
}

// AddBuffer binds vb to this vertex array with the given layout:
// attribute i of the layout is enabled at location i.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, ly mesh.Layout) {
	va.Activate()
	vb.Activate()
	stride := int32(ly.Stride())
	for i, a := range ly.Attribs {
		loc := uint32(i)
		va.guard.Call("gl.EnableVertexAttribArray("+a.Name+")", func() { gl.EnableVertexAttribArray(loc) })
		off := uintptr(ly.Offset(i))
		va.guard.Call("gl.VertexAttribPointer("+a.Name+")", func() {
			gl.VertexAttribPointerWithOffset(loc, int32(a.Size), gl.FLOAT, a.Normalized, stride, off)
		})
	}
}

// Handle returns the GPU handle for the vertex array.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Delete deletes the vertex array.
func (va *VertexArray) Delete() {
	if !va.init {
		return
	}
	va.guard.Call("gl.DeleteVertexArrays(1, &vao)", func() { gl.DeleteVertexArrays(1, &va.handle) })
	va.handle = 0
	va.init = false
}
