// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package editor holds the window grids a host program writes into and
// publishes them to the renderer as frames.
//
// Each window is a grid of cells. A cell holds one grapheme cluster; wide
// clusters take a second, continuation cell. Editor is safe for concurrent
// use: the host mutates it from any goroutine while the render goroutine
// calls Snapshot.
//
//	ed := editor.New()
//	ed.OpenWindow(1, 0, 0, 80, 24)
//	ed.PutText(1, 0, 0, "hello, 世界", nil)
//	frame := ed.Snapshot()
package editor
