// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// silent drops every record before formatting.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the diagnostics of gridview, its sub-packages and the gg
// drawing backend to l. Nothing is logged until it is called; nil turns
// logging off again.
//
// Renderers log window surface allocation and eviction at debug level,
// renderer creation and font changes at info level, and rejected font
// settings or failed surface releases at warn level. Loggers passed with
// WithLogger take precedence for that renderer.
//
// It may be called while frames are being drawn.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
	gg.SetLogger(l)
}

// Logger returns the logger set by SetLogger. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}
