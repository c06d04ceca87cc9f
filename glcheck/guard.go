// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcheck

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultMaxDrain is the number of error flags a single drain reads
// when Guard.MaxDrain is not set.
const DefaultMaxDrain = 256

// Source is the error-flag queue of a graphics backend.
// NextError removes and returns the next pending flag,
// or NoError when the queue is empty.
type Source interface {
	NextError() Code
}

// SourceFunc adapts a function such as gl.GetError to a [Source].
type SourceFunc func() Code

func (f SourceFunc) NextError() Code {
	return f()
}

// Diagnostic records one error flag raised by a guarded call.
type Diagnostic struct {
	Code Code
	Site CallSite
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("[OpenGL Error] (%d %s) %s", uint32(d.Code), d.Code, d.Site)
}

// Handler receives each diagnostic produced by a [Guard].
type Handler func(d Diagnostic)

// HaltError is the panic value of a [Guard] with Halt set,
// holding the diagnostics of the failed call.
type HaltError struct {
	Diagnostics []Diagnostic
}

func (e *HaltError) Error() string {
	ms := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		ms[i] = d.Error()
	}
	return "glcheck: halted on GPU error:\n" + strings.Join(ms, "\n")
}

// Guard brackets calls into a graphics backend: pending error flags are
// drained before the call, and every flag raised by the call is reported
// with the call site. The zero Guard has no Source and reports nothing;
// a nil *Guard simply runs the calls.
type Guard struct {

	// Source is the backend error-flag queue.
	Source Source

	// Handler receives each diagnostic. If nil, [LogHandler] is used.
	Handler Handler

	// Halt makes a failed check panic with a *[HaltError],
	// treating any GPU error as a programming error.
	Halt bool

	// MaxDrain bounds the number of flags read per drain, so that a
	// backend that never reports NoError (e.g. after a lost context)
	// cannot hang the caller. Zero means [DefaultMaxDrain].
	MaxDrain int
}

// Clear drains all pending error flags without attributing them to any
// call site, returning how many were discarded.
func (g *Guard) Clear() int {
	return g.drain(func(c Code) {
		slog.Debug("glcheck: discarding stale error", "code", c)
	})
}

// Check drains the error flags raised since the last drain, emitting one
// diagnostic per flag attributed to site. It returns true if there were
// none. If Halt is set, a failed check panics instead of returning.
func (g *Guard) Check(site CallSite) bool {
	var diags []Diagnostic
	g.drain(func(c Code) {
		d := Diagnostic{Code: c, Site: site}
		diags = append(diags, d)
		g.handle(d)
	})
	if len(diags) == 0 {
		return true
	}
	if g.Halt {
		panic(&HaltError{Diagnostics: diags})
	}
	return false
}

// Call clears pending errors, runs fn exactly once, and checks for
// errors raised by it, attributed to expr at the caller's file and line.
func (g *Guard) Call(expr string, fn func()) bool {
	if g == nil {
		fn()
		return true
	}
	site := Caller(expr, 1)
	g.Clear()
	fn()
	return g.Check(site)
}

// Call1 is [Guard.Call] for operations that return a value,
// which is returned unchanged along with the check result.
func Call1[T any](g *Guard, expr string, fn func() T) (T, bool) {
	if g == nil {
		return fn(), true
	}
	site := Caller(expr, 1)
	g.Clear()
	v := fn()
	return v, g.Check(site)
}

// Scope is an open guarded region started by [Guard.Begin].
type Scope struct {
	g    *Guard
	site CallSite
	done bool
}

// Begin clears pending errors and opens a guarded region for expr at the
// caller's file and line. Close it with [Scope.End], typically deferred
// so the check runs on every exit path:
//
//	defer g.Begin("upload vertices").End()
func (g *Guard) Begin(expr string) *Scope {
	sc := &Scope{g: g, site: Caller(expr, 1)}
	if g != nil {
		g.Clear()
	}
	return sc
}

// End checks for errors raised inside the region. Only the first call
// checks; later calls return true.
func (sc *Scope) End() bool {
	if sc.done || sc.g == nil {
		sc.done = true
		return true
	}
	sc.done = true
	return sc.g.Check(sc.site)
}

func (g *Guard) handle(d Diagnostic) {
	if g.Handler != nil {
		g.Handler(d)
		return
	}
	LogHandler(d)
}

func (g *Guard) drain(fn func(c Code)) int {
	if g == nil || g.Source == nil {
		return 0
	}
	mx := g.MaxDrain
	if mx <= 0 {
		mx = DefaultMaxDrain
	}
	n := 0
	for n < mx {
		c := g.Source.NextError()
		if c == NoError {
			return n
		}
		fn(c)
		n++
	}
	slog.Error("glcheck: error queue did not drain", "limit", mx)
	return n
}
