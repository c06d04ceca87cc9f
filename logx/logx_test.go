// Copyright (c) 2026, The Quad Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, false))
	lg.Debug("hidden")
	lg.Log(context.Background(), UserLevel, "shown", "n", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown n=1")

	buf.Reset()
	lg = slog.New(NewHandler(&buf, true))
	lg.Debug("verbose")
	assert.Contains(t, buf.String(), "msg=verbose")
}
