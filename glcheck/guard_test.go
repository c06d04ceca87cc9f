// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcheck

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queue is a fake backend error-flag queue.
type queue struct {
	pending []Code
	polls   int
}

func (q *queue) NextError() Code {
	q.polls++
	if len(q.pending) == 0 {
		return NoError
	}
	c := q.pending[0]
	q.pending = q.pending[1:]
	return c
}

func (q *queue) raise(cs ...Code) {
	q.pending = append(q.pending, cs...)
}

func newGuard(q *queue) (*Guard, *[]Diagnostic) {
	var diags []Diagnostic
	g := &Guard{Source: q, Handler: func(d Diagnostic) { diags = append(diags, d) }}
	return g, &diags
}

func TestCallNoErrors(t *testing.T) {
	q := &queue{}
	g, diags := newGuard(q)
	calls := 0
	ok := g.Call("gl.Clear(gl.COLOR_BUFFER_BIT)", func() { calls++ })
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *diags)
}

func TestCallTwoErrors(t *testing.T) {
	q := &queue{}
	g, diags := newGuard(q)
	calls := 0
	ok := g.Call("gl.DrawElements(gl.TRIANGLES, 6, gl.INT, nil)", func() {
		calls++
		q.raise(InvalidEnum, InvalidOperation)
	})
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
	require.Len(t, *diags, 2)
	assert.Equal(t, InvalidEnum, (*diags)[0].Code)
	assert.Equal(t, InvalidOperation, (*diags)[1].Code)
	for _, d := range *diags {
		assert.Equal(t, "gl.DrawElements(gl.TRIANGLES, 6, gl.INT, nil)", d.Site.Expr)
		assert.Equal(t, "guard_test.go", filepath.Base(d.Site.File))
		assert.NotZero(t, d.Site.Line)
	}
	assert.Empty(t, q.pending)
}

func TestCallClearsStaleErrors(t *testing.T) {
	q := &queue{}
	g, diags := newGuard(q)
	q.raise(InvalidValue, OutOfMemory)
	ok := g.Call("gl.UseProgram(prog)", func() {
		assert.Empty(t, q.pending, "stale errors must be drained before the call")
	})
	assert.True(t, ok)
	assert.Empty(t, *diags)
}

func TestCallSiteLine(t *testing.T) {
	q := &queue{}
	g, diags := newGuard(q)
	site := Caller("", 0)
	g.Call("x", func() { q.raise(InvalidValue) })
	require.Len(t, *diags, 1)
	assert.Equal(t, site.File, (*diags)[0].Site.File)
	assert.Equal(t, site.Line+1, (*diags)[0].Site.Line)
}

func TestCall1(t *testing.T) {
	q := &queue{}
	g, diags := newGuard(q)
	loc, ok := Call1(g, `gl.GetUniformLocation(prog, "u_Color")`, func() int32 {
		q.raise(InvalidOperation)
		return -1
	})
	assert.False(t, ok)
	assert.Equal(t, int32(-1), loc)
	assert.Len(t, *diags, 1)

	loc, ok = Call1(g, "ok", func() int32 { return 3 })
	assert.True(t, ok)
	assert.Equal(t, int32(3), loc)
}

func TestScope(t *testing.T) {
	q := &queue{}
	g, diags := newGuard(q)
	q.raise(InvalidEnum)
	upload := func() (ok bool) {
		sc := g.Begin("upload")
		defer func() { ok = sc.End() }()
		q.raise(OutOfMemory)
		return
	}
	assert.False(t, upload())
	require.Len(t, *diags, 1)
	assert.Equal(t, OutOfMemory, (*diags)[0].Code)
	assert.Equal(t, "upload", (*diags)[0].Site.Expr)

	sc := g.Begin("twice")
	q.raise(InvalidValue)
	assert.False(t, sc.End())
	assert.True(t, sc.End())
	assert.Len(t, *diags, 2)
}

func TestHalt(t *testing.T) {
	q := &queue{}
	g, diags := newGuard(q)
	g.Halt = true
	assert.NotPanics(t, func() { g.Call("fine", func() {}) })

	defer func() {
		r := recover()
		he, ok := r.(*HaltError)
		require.True(t, ok, "panic value %v", r)
		require.Len(t, he.Diagnostics, 1)
		assert.Equal(t, InvalidFramebufferOperation, he.Diagnostics[0].Code)
		assert.Contains(t, he.Error(), "GL_INVALID_FRAMEBUFFER_OPERATION")
		assert.Len(t, *diags, 1)
	}()
	g.Call("gl.Clear(gl.COLOR_BUFFER_BIT)", func() { q.raise(InvalidFramebufferOperation) })
	t.Fatal("Call did not halt")
}

// stuck never reports NoError, like a backend whose context was lost.
type stuck struct{ polls int }

func (s *stuck) NextError() Code {
	s.polls++
	return ContextLost
}

func TestMaxDrain(t *testing.T) {
	s := &stuck{}
	var n int
	g := &Guard{Source: s, MaxDrain: 5, Handler: func(Diagnostic) { n++ }}
	assert.Equal(t, 5, g.Clear())
	assert.Equal(t, 5, s.polls)
	assert.False(t, g.Call("draw", func() {}))
	assert.Equal(t, 5, n)
	assert.Equal(t, 15, s.polls)
}

func TestNilGuard(t *testing.T) {
	var g *Guard
	calls := 0
	assert.True(t, g.Call("x", func() { calls++ }))
	v, ok := Call1(g, "y", func() int { return 7 })
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, g.Begin("z").End())
	assert.Equal(t, 1, calls)

	var zero Guard
	assert.True(t, zero.Call("x", func() {}))
}

func TestTextHandler(t *testing.T) {
	var buf bytes.Buffer
	q := &queue{}
	g := &Guard{Source: q, Handler: TextHandler(&buf)}
	g.Check(CallSite{Expr: "gl.BindBuffer(gl.ARRAY_BUFFER, 9)", File: "main.go", Line: 12})
	assert.Empty(t, buf.String())
	q.raise(InvalidOperation)
	g.Check(CallSite{Expr: "gl.BindBuffer(gl.ARRAY_BUFFER, 9)", File: "main.go", Line: 12})
	assert.Equal(t, "[OpenGL Error]: (1282 GL_INVALID_OPERATION)\ngl.BindBuffer(gl.ARRAY_BUFFER, 9): main.go: 12\n", buf.String())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "GL_NO_ERROR", NoError.String())
	assert.Equal(t, "GL_INVALID_VALUE", InvalidValue.String())
	assert.Equal(t, "GL_ERROR_0x0BAD", Code(0x0bad).String())

	d := Diagnostic{Code: InvalidEnum, Site: CallSite{Expr: "f()", File: "a.go", Line: 3}}
	assert.Equal(t, "[OpenGL Error] (1280 GL_INVALID_ENUM) f(): a.go: 3", d.Error())
}
