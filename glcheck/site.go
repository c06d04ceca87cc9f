// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcheck

import (
	"fmt"
	"runtime"
)

// CallSite identifies a single call into the graphics backend
// for diagnostic reporting.
type CallSite struct {

	// Expr is the source text of the call, e.g. "gl.DrawElements(...)".
	Expr string

	// File is the path of the source file making the call.
	File string

	// Line is the line number of the call in File.
	Line int
}

// Caller returns a CallSite for expr located at the stack frame skip levels
// above the caller of Caller: 0 is the function calling Caller.
// File and Line are left empty if the stack is not available.
func Caller(expr string, skip int) CallSite {
	cs := CallSite{Expr: expr}
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		cs.File = file
		cs.Line = line
	}
	return cs
}

func (cs CallSite) String() string {
	return fmt.Sprintf("%s: %s: %d", cs.Expr, cs.File, cs.Line)
}
