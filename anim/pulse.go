// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim animates uniform values from frame to frame.
package anim

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pulse is a value that moves by Step each frame and reverses
// direction when it reaches 0 or 1.
type Pulse struct {

	// Value is the current value, in [0,1].
	Value float32

	// Step is the signed change per frame.
	Step float32
}

// NewPulse returns a pulse starting at value, rising by step per frame.
func NewPulse(value, step float32) *Pulse {
	return &Pulse{Value: math32.Min(math32.Max(value, 0), 1), Step: math32.Abs(step)}
}

// Next advances the pulse by one frame and returns the new value.
func (p *Pulse) Next() float32 {
	p.Value += p.Step
	if p.Value > 1 || p.Value < 0 {
		p.Step = -p.Step
		p.Value = math32.Min(math32.Max(p.Value, 0), 1)
	}
	return p.Value
}

// Apply returns c with its red channel set to the current value.
func (p *Pulse) Apply(c mgl32.Vec4) mgl32.Vec4 {
	c[0] = p.Value
	return c
}
