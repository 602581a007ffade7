// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shaping

// Glyph is one positioned glyph of a GlyphRun.
type Glyph struct {
	// ID is the glyph index in the run's font.
	ID GlyphID

	// X is the pen position relative to the left edge of the shaped text.
	X float64

	// Y is the baseline position relative to the top of the cell.
	Y float64

	// Cluster is the rune index in the shaped text this glyph belongs to.
	Cluster int
}

// GlyphRun is a sequence of glyphs sharing one font and size.
// Glyph positions of consecutive runs from one shaping call are all
// relative to the same origin, so runs can be drawn without extra offsets.
type GlyphRun struct {
	Font    *Font
	Size    float64
	Glyphs  []Glyph
	Advance float64
}

// Width returns the total advance of runs.
func Width(runs []GlyphRun) float64 {
	var w float64
	for _, r := range runs {
		w += r.Advance
	}
	return w
}
