// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"strings"
)

// Source holds the per-stage source code split out of a single
// shader file. Either stage may be empty if its section was missing.
type Source struct {

	// Vertex is the vertex stage source, one line per source line,
	// each terminated by a newline.
	Vertex string

	// Fragment is the fragment stage source.
	Fragment string
}

// Stage returns the source for the given stage, or "" for NoStage.
func (src *Source) Stage(st Stage) string {
	switch st {
	case VertexStage:
		return src.Vertex
	case FragmentStage:
		return src.Fragment
	}
	return ""
}

// SetStage sets the source for the given stage. It is a no-op for NoStage.
func (src *Source) SetStage(st Stage, code string) {
	switch st {
	case VertexStage:
		src.Vertex = code
	case FragmentStage:
		src.Fragment = code
	}
}

// Validate returns an error naming every stage that has no source.
// A program must not be linked from a Source that fails validation.
func (src *Source) Validate() error {
	var missing []string
	for st := VertexStage; st < StagesN; st++ {
		if strings.TrimSpace(src.Stage(st)) == "" {
			missing = append(missing, st.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("shader: missing source for stage(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
