// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcheck

import "fmt"

// Code is an error flag reported by the graphics backend.
type Code uint32

// These are the error flags defined by OpenGL (glGetError).
const (
	NoError                     Code = 0
	InvalidEnum                 Code = 0x0500
	InvalidValue                Code = 0x0501
	InvalidOperation            Code = 0x0502
	StackOverflow               Code = 0x0503
	StackUnderflow              Code = 0x0504
	OutOfMemory                 Code = 0x0505
	InvalidFramebufferOperation Code = 0x0506
	ContextLost                 Code = 0x0507
)

var codeNames = map[Code]string{
	NoError:                     "GL_NO_ERROR",
	InvalidEnum:                 "GL_INVALID_ENUM",
	InvalidValue:                "GL_INVALID_VALUE",
	InvalidOperation:            "GL_INVALID_OPERATION",
	StackOverflow:               "GL_STACK_OVERFLOW",
	StackUnderflow:              "GL_STACK_UNDERFLOW",
	OutOfMemory:                 "GL_OUT_OF_MEMORY",
	InvalidFramebufferOperation: "GL_INVALID_FRAMEBUFFER_OPERATION",
	ContextLost:                 "GL_CONTEXT_LOST",
}

func (c Code) String() string {
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("GL_ERROR_0x%04X", uint32(c))
}
