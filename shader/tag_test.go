// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagStage(t *testing.T) {
	tests := []struct {
		line   string
		strict Stage
		stag   bool
		substr Stage
		sstag  bool
	}{
		{"#shader vertex", VertexStage, true, VertexStage, true},
		{"#shader fragment", FragmentStage, true, FragmentStage, true},
		{"  \t#shader   vertex  ", VertexStage, true, VertexStage, true},
		{"#shader fragment // main pass", FragmentStage, true, FragmentStage, true},
		{"#shader", NoStage, true, NoStage, true},
		{"#shader compute", NoStage, true, NoStage, true},
		{"#shadervertex", NoStage, false, VertexStage, true},
		{"// #shader vertex", NoStage, false, VertexStage, true},
		{"#shader vertexfragment", NoStage, true, VertexStage, true},
		{"in vec4 vertex;", NoStage, false, NoStage, false},
		{"", NoStage, false, NoStage, false},
	}
	for _, tt := range tests {
		st, tag := TagStage(tt.line, MatchStrict)
		assert.Equal(t, tt.strict, st, "strict %q", tt.line)
		assert.Equal(t, tt.stag, tag, "strict %q", tt.line)
		st, tag = TagStage(tt.line, MatchSubstring)
		assert.Equal(t, tt.substr, st, "substring %q", tt.line)
		assert.Equal(t, tt.sstag, tag, "substring %q", tt.line)
	}
}

func TestStage(t *testing.T) {
	assert.Equal(t, "none", NoStage.String())
	assert.Equal(t, "vertex", VertexStage.String())
	assert.Equal(t, "fragment", FragmentStage.String())
	assert.Equal(t, "Stage(7)", Stage(7).String())

	st, ok := StageForKeyword("fragment")
	assert.True(t, ok)
	assert.Equal(t, FragmentStage, st)
	_, ok = StageForKeyword("geometry")
	assert.False(t, ok)

	var src Source
	src.SetStage(VertexStage, "v")
	src.SetStage(NoStage, "dropped")
	assert.Equal(t, "v", src.Stage(VertexStage))
	assert.Equal(t, "", src.Stage(NoStage))
}
