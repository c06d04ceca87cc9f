// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcheck wraps calls into a graphics backend with error-flag
// checking. A [Guard] drains stale flags before each call and reports
// every flag the call raises, attributed to the call's source text,
// file, and line. The backend's error queue is injected as a [Source],
// so guards can be exercised without a live GPU context.
package glcheck
