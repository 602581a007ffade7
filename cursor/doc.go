// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cursor draws the editor cursor on top of a frame.
//
// Renderer implements gridview.CursorRenderer. It eases the cursor toward
// its cell over a short animation, blinks it with the wait, on and off
// durations of the frame's Cursor, and sizes vertical and horizontal
// cursors by their cell percentage. Block cursors redraw the character
// under them in inverted colors.
//
//	r, err := gridview.NewRenderer(ed, gridview.WithCursorRenderer(cursor.New()))
package cursor
