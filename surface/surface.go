// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/gridview/shaping"
)

// Surface is the rendering target abstraction used by the frame renderer.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Drawing state set by ClipRect and SetTransform is saved by Save and
// restored by Restore. Colors and line styles are passed per call, so no
// paint state outlives the call that used it.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color, ignoring the
	// current clip and transform.
	Clear(c gg.RGBA)

	// FillRect fills a rectangle with a solid color.
	FillRect(r Rect, c gg.RGBA)

	// DrawLine strokes a straight line using the given style.
	DrawLine(from, to Point, style LineStyle)

	// DrawGlyphRun fills the outlines of a shaped glyph run. Glyph
	// positions are relative to origin.
	DrawGlyphRun(run shaping.GlyphRun, origin Point, c gg.RGBA)

	// DrawSurface composites src onto this surface with its top-left corner
	// at the given position. The source is copied pixel for pixel, never
	// scaled.
	DrawSurface(src Surface, at Point)

	// CopySurface replaces the pixels under src with src's own, alpha
	// included, with its top-left corner at the given position. Only the
	// translation of the current transform applies.
	CopySurface(src Surface, at Point)

	// Save pushes the current clip and transform.
	Save()

	// Restore pops the state pushed by the matching Save.
	// Restore without a matching Save is a no-op.
	Restore()

	// ClipRect intersects the current clip with r.
	ClipRect(r Rect)

	// SetTransform replaces the current transform.
	SetTransform(t Transform)

	// Snapshot returns a copy of the surface contents.
	// It returns nil for surfaces with zero area.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}
