// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// floatBytes is the size of a float32 vertex component.
const floatBytes = 4

// Attrib is one float32 vertex attribute within an interleaved vertex.
// Its shader location is its index in the [Layout].
type Attrib struct {

	// Name is the shader input variable name, for reference.
	Name string

	// Size is the number of float32 components, 1 to 4.
	Size int

	// Normalized maps integer data to [0,1]; unused for float data.
	Normalized bool
}

// Layout describes how attributes are interleaved in a vertex buffer.
type Layout struct {
	Attribs []Attrib
}

// Components returns the number of float32 components per vertex.
func (ly *Layout) Components() int {
	n := 0
	for _, a := range ly.Attribs {
		n += a.Size
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (ly *Layout) Stride() int {
	return ly.Components() * floatBytes
}

// Offset returns the byte offset of attribute i within a vertex.
func (ly *Layout) Offset(i int) int {
	off := 0
	for _, a := range ly.Attribs[:i] {
		off += a.Size * floatBytes
	}
	return off
}
