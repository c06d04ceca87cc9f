// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShaderBuiltin(t *testing.T) {
	src, err := loadShader(&Config{Shader: "Basic", Strict: true})
	require.NoError(t, err)
	assert.NoError(t, src.Validate())
	assert.Contains(t, src.Fragment, "uniform vec4 "+colorUniform+";")
	assert.NotContains(t, src.Vertex, "#shader")

	src, err = loadShader(&Config{Shader: "VertexColor", Strict: true})
	require.NoError(t, err)
	assert.NoError(t, src.Validate())
	assert.Contains(t, src.Vertex, "v_Color = a_Color;")
	assert.NotContains(t, src.Fragment, colorUniform)

	_, err = loadShader(&Config{Shader: "Missing", Strict: true})
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadShaderFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "commented.shader")
	in := "#shader vertex\n// the #shader fragment tag follows\nV\n#shader fragment\nF\n"
	require.NoError(t, os.WriteFile(file, []byte(in), 0o644))

	src, err := loadShader(&Config{Shader: file, Strict: true})
	require.NoError(t, err)
	assert.Equal(t, "// the #shader fragment tag follows\nV\n", src.Vertex)
	assert.Equal(t, "F\n", src.Fragment)

	src, err = loadShader(&Config{Shader: file, Strict: false})
	require.NoError(t, err)
	assert.Empty(t, src.Vertex)
	assert.Equal(t, "V\nF\n", src.Fragment)

	_, err = loadShader(&Config{Shader: filepath.Join(dir, "none.shader"), Strict: true})
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadShaderIncludes(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "inc.shader")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "color.glsl"), []byte("uniform vec4 u_Color;\n"), 0o644))
	require.NoError(t, os.WriteFile(file, []byte("#shader vertex\nV\n#shader fragment\n#include \"color.glsl\"\nF\n"), 0o644))

	src, err := loadShader(&Config{Shader: file, Strict: true, Includes: true})
	require.NoError(t, err)
	assert.Equal(t, "// #include \"color.glsl\"\nuniform vec4 u_Color;\nF\n", src.Fragment)

	src, err = loadShader(&Config{Shader: file, Strict: true})
	require.NoError(t, err)
	assert.Equal(t, "#include \"color.glsl\"\nF\n", src.Fragment)
}
