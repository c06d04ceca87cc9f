// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPulseBounce(t *testing.T) {
	p := NewPulse(0, 0.25)
	want := []float32{0.25, 0.5, 0.75, 1, 1, 0.75, 0.5, 0.25, 0, 0, 0.25}
	for i, w := range want {
		assert.Equal(t, w, p.Next(), "frame %d", i)
	}
}

func TestPulseRange(t *testing.T) {
	p := NewPulse(2, -0.05)
	assert.Equal(t, float32(1), p.Value)
	assert.Equal(t, float32(0.05), p.Step)
	for range 1000 {
		v := p.Next()
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestPulseApply(t *testing.T) {
	p := &Pulse{Value: 0.4}
	c := p.Apply(mgl32.Vec4{0.2, 0.3, 0.8, 1})
	assert.Equal(t, mgl32.Vec4{0.4, 0.3, 0.8, 1}, c)
}
