// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"time"

	"github.com/gogpu/gridview/shaping"
	"github.com/gogpu/gridview/surface"
)

// SnapshotSource hands out the per-frame editor snapshot. Implementations
// copy their state under their own lock and return a value the renderer
// may read without synchronization.
type SnapshotSource interface {
	Snapshot() Frame
}

// SnapshotFunc adapts a function to SnapshotSource.
type SnapshotFunc func() Frame

// Snapshot implements SnapshotSource.
func (f SnapshotFunc) Snapshot() Frame {
	return f()
}

// Scheduler receives the renderer's request for another frame. The request
// is best effort and may be coalesced.
type Scheduler interface {
	QueueNextFrame()
}

// Shaper is the shaping cache used by the cell pipeline.
// *shaping.CachingShaper implements it.
type Shaper interface {
	// FontBaseDimensions returns the cell width and height in pixels.
	FontBaseDimensions() (w, h float64)

	// UnderlinePosition returns the underline offset measured up from the
	// bottom of a cell.
	UnderlinePosition() float64

	// FontSize returns the font size in pixels.
	FontSize() float64

	// ShapeCached returns glyph runs for text. Results for equal arguments
	// are identical until the font changes.
	ShapeCached(text string, bold, italic bool) []shaping.GlyphRun

	// UpdateFont applies a font setting and reports whether the font
	// changed.
	UpdateFont(setting string) bool
}

// CursorRenderer draws the cursor on the root target after all windows.
// It owns whatever animation state it needs across frames.
type CursorRenderer interface {
	Draw(c Cursor, defaults Colors, metrics FontMetrics, shaper Shaper, target surface.Surface, dt time.Duration)
}
