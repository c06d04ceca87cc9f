// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu is an OpenGL 4.1 core backend on go-gl, with a glfw
// window, shader programs, vertex and index buffers, and drawing.
// Every GL call is made through a [glcheck.Guard], which may be nil.
//
// All functions must be called on the thread holding the GL context,
// which for glfw is the main initial thread.
package glgpu
