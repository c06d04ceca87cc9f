// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcheck

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// LogHandler reports a diagnostic through the default slog logger.
func LogHandler(d Diagnostic) {
	slog.Error("OpenGL error", "code", uint32(d.Code), "name", d.Code.String(),
		"call", d.Site.Expr, "file", d.Site.File, "line", d.Site.Line)
}

// TextHandler returns a [Handler] that writes each diagnostic to w as
//
//	[OpenGL Error]: (1282 GL_INVALID_OPERATION)
//	gl.DrawElements(...): main.go: 42
//
// The header is colored when w is a terminal that supports it.
func TextHandler(w io.Writer) Handler {
	out := termenv.NewOutput(w)
	return func(d Diagnostic) {
		hdr := out.String("[OpenGL Error]").Foreground(out.Color("1")).Bold()
		fmt.Fprintf(w, "%s: (%d %s)\n%s\n", hdr, uint32(d.Code), d.Code, d.Site)
	}
}
