// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides indexed 2D vertex geometry with per-vertex colors,
// loaded from TOML, and its interleaved vertex buffer layout.
package mesh

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

//go:embed quad.toml
var quadTOML []byte

// Mesh is indexed triangle geometry with a 2D position and
// an RGBA color for each vertex.
type Mesh struct {

	// Name is a descriptive name for the mesh.
	Name string `toml:"name"`

	// Positions are the vertex positions in normalized device coordinates.
	Positions []mgl32.Vec2 `toml:"positions"`

	// Colors are the per-vertex colors, one for each position.
	Colors []mgl32.Vec4 `toml:"colors"`

	// Indices lists the vertices of each triangle, three per triangle.
	Indices []uint32 `toml:"indices"`
}

// Default returns the built-in unit quad.
func Default() *Mesh {
	return errors.Must1(Read(bytes.NewReader(quadTOML)))
}

// Open reads and validates a mesh from the named TOML file.
func Open(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ms, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}
	return ms, nil
}

// Read decodes and validates a mesh in TOML format from r.
func Read(r io.Reader) (*Mesh, error) {
	ms := &Mesh{}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(ms); err != nil {
		return nil, err
	}
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	return ms, nil
}

// Validate checks that every vertex has a color, and that the indices
// form whole triangles referring to existing vertices.
func (ms *Mesh) Validate() error {
	nv := len(ms.Positions)
	if nv == 0 {
		return fmt.Errorf("mesh %q has no vertices", ms.Name)
	}
	if len(ms.Colors) != nv {
		return fmt.Errorf("mesh %q has %d colors for %d vertices", ms.Name, len(ms.Colors), nv)
	}
	if len(ms.Indices) == 0 || len(ms.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q has %d indices, not a positive multiple of 3", ms.Name, len(ms.Indices))
	}
	for i, ix := range ms.Indices {
		if int(ix) >= nv {
			return fmt.Errorf("mesh %q index %d is %d, out of range for %d vertices", ms.Name, i, ix, nv)
		}
	}
	return nil
}

// Layout returns the interleaved vertex layout produced by [Mesh.Interleave]:
// a 2-component position at location 0 and a 4-component color at location 1.
func (ms *Mesh) Layout() Layout {
	return Layout{Attribs: []Attrib{
		{Name: "position", Size: 2},
		{Name: "color", Size: 4},
	}}
}

// Interleave returns the vertex data as position and color
// components per vertex, in vertex order.
func (ms *Mesh) Interleave() []float32 {
	lay := ms.Layout()
	data := make([]float32, 0, len(ms.Positions)*lay.Components())
	for i, p := range ms.Positions {
		c := ms.Colors[i]
		data = append(data, p[0], p[1], c[0], c[1], c[2], c[3])
	}
	return data
}
