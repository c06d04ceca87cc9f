// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader splits a single shader file holding several tagged
// sections into per-stage source code. A file looks like:
//
//	#shader vertex
//	<vertex stage source>
//	#shader fragment
//	<fragment stage source>
//
// Sections may come in any order and either may be missing.
package shader
