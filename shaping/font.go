// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shaping

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/sfnt"
)

// GlyphID identifies a glyph within a font.
type GlyphID = text.GlyphID

// outlineCacheLimit bounds the number of glyph outlines kept per font.
const outlineCacheLimit = 4096

// Font is a parsed font file usable at any size.
//
// A Font carries three views of the same data: a gg FontSource for metrics
// and outline extraction, a go-text Font for HarfBuzz shaping and an sfnt
// Font for tables gg does not expose (underline position).
//
// Font is safe for concurrent use.
type Font struct {
	name   string
	source *text.FontSource
	shaped *font.Font

	unitsPerEm float64
	// underline is the post table underline position in font units,
	// negative below the baseline. hasUnderline is false when the font has
	// no post table.
	underline    float64
	hasUnderline bool

	mu        sync.Mutex
	extractor *text.OutlineExtractor
	outlines  *text.Cache[outlineKey, *text.GlyphOutline]
}

type outlineKey struct {
	id   GlyphID
	size float64
}

// NewFont parses TrueType or OpenType data. The data is copied.
func NewFont(name string, data []byte) (*Font, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("shaping: parse %s: %w", name, err)
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("shaping: parse %s for shaping: %w", name, err)
	}

	tables, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("shaping: parse %s tables: %w", name, err)
	}

	f := &Font{
		name:       name,
		source:     source,
		shaped:     face.Font,
		unitsPerEm: float64(tables.UnitsPerEm()),
		extractor:  text.NewOutlineExtractor(),
		outlines:   text.NewCache[outlineKey, *text.GlyphOutline](outlineCacheLimit),
	}
	if post := tables.PostTable(); post != nil && post.UnderlinePosition != 0 {
		f.underline = float64(post.UnderlinePosition)
		f.hasUnderline = true
	}
	return f, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	// #nosec G304 -- font path comes from the user's font setting
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shaping: read font: %w", err)
	}
	return NewFont(path, data)
}

// Name returns the name the font was registered under.
func (f *Font) Name() string {
	return f.name
}

// Source returns the gg font source backing f.
func (f *Font) Source() *text.FontSource {
	return f.source
}

// HasGlyph reports whether f maps r to a real glyph.
func (f *Font) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

// Metrics returns the font metrics at the given pixel size.
func (f *Font) Metrics(size float64) text.Metrics {
	return f.source.Face(size).Metrics()
}

// UnderlineDepth returns how far below the baseline an underline sits at
// the given size. Fonts without a post table fall back to half the descent.
func (f *Font) UnderlineDepth(size float64) float64 {
	if !f.hasUnderline || f.unitsPerEm == 0 {
		return f.Metrics(size).Descent / 2
	}
	return -f.underline * size / f.unitsPerEm
}

// Outline returns the outline of glyph id scaled to size pixels per em.
// Coordinates are relative to the glyph origin on the baseline with y
// pointing down. Glyphs without an outline, such as spaces, return an
// outline with no segments.
func (f *Font) Outline(id GlyphID, size float64) (*text.GlyphOutline, error) {
	key := outlineKey{id: id, size: size}
	if o, ok := f.outlines.Get(key); ok {
		return o, nil
	}

	f.mu.Lock()
	o, err := f.extractor.ExtractOutline(f.source.Parsed(), id, size)
	f.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("shaping: outline %s glyph %d: %w", f.name, id, err)
	}

	f.outlines.Set(key, o)
	return o, nil
}
