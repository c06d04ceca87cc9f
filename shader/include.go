// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
)

const includeToken = `#include "`

// IncludeFS processes #include "file" statements in
// the given code string, using the given file system
// and default dir to locate the included files.
// Each include line is commented out and followed by the
// contents of the file. Included files are not themselves expanded.
func IncludeFS(fsys fs.FS, dir, code string) string {
	if !strings.Contains(code, includeToken) {
		return code
	}
	fl := strings.SplitAfter(code, "\n")
	for li := len(fl) - 1; li >= 0; li-- {
		ln := fl[li]
		tl := strings.TrimLeft(ln, " \t")
		if !strings.HasPrefix(tl, includeToken) {
			continue
		}
		fn := tl[len(includeToken):]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			slog.Error("shader.IncludeFS: malformed #include: no final quote", "line", strings.TrimSpace(ln))
			continue
		}
		fname := fn[:qi]
		b, err := fs.ReadFile(fsys, fname)
		if err != nil && dir != "" {
			b, err = fs.ReadFile(fsys, path.Join(dir, fname))
		}
		if err != nil {
			slog.Error("shader.IncludeFS: could not find include", "file", fname, "dir", dir)
			continue
		}
		inc := string(b)
		if inc != "" && !strings.HasSuffix(inc, "\n") {
			inc += "\n"
		}
		fl[li] = "// " + ln
		if !strings.HasSuffix(fl[li], "\n") {
			fl[li] += "\n"
		}
		fl = slices.Insert(fl, li+1, strings.SplitAfter(inc, "\n")...)
	}
	return strings.Join(fl, "")
}
