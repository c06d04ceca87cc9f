// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"bufio"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Parser splits a tagged shader file into per-stage sources.
// The zero value uses strict tag matching and no include expansion.
// Strict matching does not treat a line that merely contains #shader
// as a tag, unlike the classic tutorial splitter; set Match to
// [MatchSubstring] for that behavior.
type Parser struct {

	// Match selects how #shader tag lines are recognized.
	Match Match

	// Includes, if set, is used to expand #include "file" lines
	// in each stage after splitting.
	Includes fs.FS

	// IncludeDir is the fallback directory within Includes
	// for resolving include file names.
	IncludeDir string
}

// Parse splits the shader file read from r using a default [Parser],
// which uses [MatchStrict]: a tag must start its line with #shader
// followed by the stage keyword. Use a [Parser] with [MatchSubstring]
// to accept any line containing #shader as a tag.
func Parse(r io.Reader) (Source, error) {
	var p Parser
	return p.Parse(r)
}

// ParseString splits the given shader file text using a default [Parser].
// Reading a string cannot fail; any error is logged.
func ParseString(s string) Source {
	var p Parser
	return errors.Log1(p.Parse(strings.NewReader(s)))
}

// ParseFile opens and splits the named shader file using a default [Parser].
func ParseFile(path string) (Source, error) {
	var p Parser
	return p.ParseFile(path)
}

// ParseFS opens and splits the named shader file in fsys using a default [Parser].
func ParseFS(fsys fs.FS, name string) (Source, error) {
	var p Parser
	return p.ParseFS(fsys, name)
}

// ParseFile opens and splits the named shader file.
// The error from opening the file is returned unchanged.
func (p *Parser) ParseFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()
	return p.Parse(f)
}

// ParseFS opens and splits the named shader file in fsys.
func (p *Parser) ParseFS(fsys fs.FS, name string) (Source, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads r to the end, line by line, and returns the source of each
// stage. A tag line selects the stage that subsequent lines are appended
// to, each followed by a newline. Lines before the first tag are dropped.
// Only errors reading r are returned: missing stages are left empty.
func (p *Parser) Parse(r io.Reader) (Source, error) {
	var bufs [StagesN]strings.Builder
	target := NoStage
	lines, lerr := Lines(r)
	for ln := range lines {
		if st, tag := TagStage(ln, p.Match); tag {
			switch {
			case st != NoStage:
				target = st
			case p.Match == MatchStrict:
				slog.Warn("shader: tag names no known stage; dropping its section", "line", ln)
				target = NoStage
			}
			continue
		}
		if target == NoStage {
			continue
		}
		bufs[target].WriteString(ln)
		bufs[target].WriteByte('\n')
	}
	if err := lerr(); err != nil {
		return Source{}, err
	}
	var src Source
	for st := VertexStage; st < StagesN; st++ {
		code := bufs[st].String()
		if p.Includes != nil {
			code = IncludeFS(p.Includes, p.IncludeDir, code)
		}
		src.SetStage(st, code)
	}
	return src, nil
}

// Lines returns a single-use sequence over the lines of r, without their
// \n or \r\n terminators. Lines have no length limit. r is consumed as
// the sequence is iterated; the returned function reports any read error
// once iteration has stopped.
func Lines(r io.Reader) (iter.Seq[string], func() error) {
	br := bufio.NewReader(r)
	var err error
	seq := func(yield func(string) bool) {
		for {
			ln, rerr := br.ReadString('\n')
			if rerr != nil && rerr != io.EOF {
				err = rerr
				return
			}
			if ln == "" && rerr == io.EOF {
				return
			}
			ln = strings.TrimSuffix(ln, "\n")
			ln = strings.TrimSuffix(ln, "\r")
			if !yield(ln) || rerr == io.EOF {
				return
			}
		}
	}
	return seq, func() error { return err }
}
