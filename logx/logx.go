// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default structured logger.
// The default level depends on the debug and release build tags.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the lowest level of log messages shown to the user.
var UserLevel = defaultUserLevel

// NewHandler returns a text handler writing to w at UserLevel,
// or at debug level if verbose is set.
func NewHandler(w io.Writer, verbose bool) slog.Handler {
	lvl := UserLevel
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
}

// Init makes a [NewHandler] on stderr the default slog handler.
func Init(verbose bool) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, verbose)))
}
