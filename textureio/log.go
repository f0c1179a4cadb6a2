// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package textureio

import (
	"log/slog"

	"github.com/gogpu/texpaint"
)

func logger() *slog.Logger {
	return texpaint.Logger()
}
