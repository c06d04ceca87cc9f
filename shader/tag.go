// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import "strings"

// TagToken is the token that starts a section tag line.
const TagToken = "#shader"

// Match selects how section tag lines are recognized.
type Match int32

const (
	// MatchStrict requires the line to start (after leading whitespace)
	// with the #shader token, followed by whitespace and the stage keyword.
	// Lines that merely mention the tag, such as comments, are content.
	MatchStrict Match = iota

	// MatchSubstring treats any line containing #shader as a tag line,
	// selecting the vertex stage if the line contains "vertex" anywhere,
	// else the fragment stage if it contains "fragment".
	MatchSubstring
)

func (m Match) String() string {
	if m == MatchSubstring {
		return "substring"
	}
	return "strict"
}

// TagStage reports whether line is a section tag line under the given
// matching mode, and if so which stage it selects. A tag line that names
// no known stage returns NoStage and true.
func TagStage(line string, m Match) (Stage, bool) {
	if m == MatchSubstring {
		if !strings.Contains(line, TagToken) {
			return NoStage, false
		}
		switch {
		case strings.Contains(line, "vertex"):
			return VertexStage, true
		case strings.Contains(line, "fragment"):
			return FragmentStage, true
		}
		return NoStage, true
	}
	fs := strings.Fields(line)
	if len(fs) == 0 || fs[0] != TagToken {
		return NoStage, false
	}
	if len(fs) < 2 {
		return NoStage, true
	}
	st, _ := StageForKeyword(fs[1])
	return st, true
}
