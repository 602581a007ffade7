// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gridview is the frame-rendering core of a GPU-accelerated text
// editor front end.
//
// # Overview
//
// Each frame the Renderer takes an immutable snapshot of the editor (a list
// of windows, each a grid of styled text), keeps one cached off-screen
// surface per window, repaints every window and composites the windows onto
// a root target. The cursor is drawn last.
//
// Drawing goes through the surface package, whose default backend renders
// with github.com/gogpu/gg. Importing github.com/gogpu/gg/gpu enables GPU
// acceleration with CPU fallback.
//
// # Quick Start
//
//	ed := editor.New()
//	ed.OpenWindow(1, 0, 0, 80, 24)
//	ed.PutText(1, 0, 0, "hello", nil)
//
//	r, err := gridview.NewRenderer(ed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	root, _ := surface.NewImageSurface(1280, 800)
//	fontChanged, err := r.Draw(root, gridview.CoordinateSystem{}, 16*time.Millisecond)
//
// # Frame
//
// Draw performs these steps:
//   - asks the Scheduler for another frame
//   - takes the snapshot from the SnapshotSource
//   - clears the target to the default background
//   - applies the frame's font setting, if any
//   - evicts closed windows
//   - applies the coordinate transform
//   - draws every window in order and publishes WindowRegions
//   - draws the cursor
//
// # Windows
//
// A window's surface is created when its grid id is first seen or when the
// window asks to be cleared. When the window or font size changes, the old
// content is copied into a new surface at the origin. The on-screen
// position moves 40% of the remaining distance to its target every frame.
//
// # Cells
//
// Windows are repainted in two passes over their draw commands: all
// backgrounds first, then text and decorations clipped to each command's
// cells.
//
// # Coordinate System
//
// Pixel coordinates have the origin at the top-left with y growing down.
// Cell (col, row) covers x in [col*w, (col+1)*w) and y in [row*h, (row+1)*h)
// for the current FontMetrics.
package gridview
