// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import "strconv"

// Stage is a shader stage that a section of a shader file provides
// source code for.
type Stage int32

const (
	// NoStage is the target before any #shader tag has been seen,
	// and after a tag naming an unknown stage. Lines are dropped.
	NoStage Stage = iota - 1

	// VertexStage is the vertex shader stage.
	VertexStage

	// FragmentStage is the fragment shader stage.
	FragmentStage

	// StagesN is the number of real stages.
	StagesN
)

// Keyword returns the keyword that names this stage on a #shader tag line.
func (st Stage) Keyword() string {
	switch st {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return ""
}

func (st Stage) String() string {
	switch st {
	case NoStage:
		return "none"
	case VertexStage, FragmentStage:
		return st.Keyword()
	}
	return "Stage(" + strconv.Itoa(int(st)) + ")"
}

// StageForKeyword returns the stage named by the given tag keyword,
// and false if the keyword names no known stage.
func StageForKeyword(kw string) (Stage, bool) {
	for st := VertexStage; st < StagesN; st++ {
		if st.Keyword() == kw {
			return st, true
		}
	}
	return NoStage, false
}
