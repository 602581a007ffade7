// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package shaping

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	gotext "github.com/go-text/typesetting/shaping"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// DefaultCacheLimit is the default number of shaped strings kept.
const DefaultCacheLimit = 8192

// ErrNoFont is returned when none of a setting's families resolve.
var ErrNoFont = errors.New("shaping: no usable font in setting")

// ShaperOption configures a CachingShaper during creation.
type ShaperOption func(*shaperOptions)

type shaperOptions struct {
	setting    string
	cacheLimit int
	logger     *slog.Logger
}

// WithFont sets the initial font setting, for example "Go Mono:h16".
func WithFont(setting string) ShaperOption {
	return func(o *shaperOptions) {
		o.setting = setting
	}
}

// WithCacheLimit sets the soft limit of the shaped-text cache.
// Zero means unlimited.
func WithCacheLimit(n int) ShaperOption {
	return func(o *shaperOptions) {
		o.cacheLimit = n
	}
}

// WithLogger sets the logger. By default the shaper logs through gg.Logger.
func WithLogger(l *slog.Logger) ShaperOption {
	return func(o *shaperOptions) {
		o.logger = l
	}
}

type shapeKey struct {
	text   string
	bold   bool
	italic bool
}

// cellMetrics are the grid dimensions derived from the primary font.
type cellMetrics struct {
	width     float64
	height    float64
	ascent    float64
	underline float64
}

// CachingShaper shapes text with HarfBuzz and caches the result by
// (text, bold, italic). The cache is dropped whenever the font changes, so
// results are deterministic for a fixed key and font configuration.
//
// CachingShaper is safe for concurrent use.
type CachingShaper struct {
	mu      sync.RWMutex
	options FontOptions
	sets    []*FontSet
	metrics cellMetrics
	gen     uint64

	cache  *text.Cache[shapeKey, []GlyphRun]
	pool   sync.Pool
	logger *slog.Logger
}

// NewCachingShaper creates a shaper for the configured font setting, or
// Go Mono at DefaultFontSize when none is given.
func NewCachingShaper(opts ...ShaperOption) (*CachingShaper, error) {
	o := shaperOptions{cacheLimit: DefaultCacheLimit}
	for _, opt := range opts {
		opt(&o)
	}

	s := &CachingShaper{
		cache:  text.NewCache[shapeKey, []GlyphRun](o.cacheLimit),
		logger: o.logger,
		pool: sync.Pool{
			New: func() any {
				return &gotext.HarfbuzzShaper{}
			},
		},
	}

	fo := DefaultFontOptions()
	if o.setting != "" {
		fo = ParseFontOptions(o.setting)
	}
	sets, err := s.resolve(fo)
	if err != nil {
		return nil, err
	}
	s.apply(fo, sets)
	return s, nil
}

func (s *CachingShaper) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return gg.Logger()
}

// FontOptions returns the active font configuration.
func (s *CachingShaper) FontOptions() FontOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// FontBaseDimensions returns the width and height of one grid cell.
func (s *CachingShaper) FontBaseDimensions() (w, h float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics.width, s.metrics.height
}

// FontSize returns the font size in pixels.
func (s *CachingShaper) FontSize() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options.Size
}

// UnderlinePosition returns the underline offset measured up from the
// bottom of a cell.
func (s *CachingShaper) UnderlinePosition() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics.underline
}

// Baseline returns the baseline offset from the top of a cell.
func (s *CachingShaper) Baseline() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics.ascent
}

// CacheLen returns the number of cached shaping results.
func (s *CachingShaper) CacheLen() int {
	return s.cache.Len()
}

// UpdateFont switches to a new font setting. It reports whether the
// effective font changed. Settings that resolve no font are logged and
// leave the current font in place.
func (s *CachingShaper) UpdateFont(setting string) bool {
	fo := ParseFontOptions(setting)
	if fo.Equal(s.FontOptions()) {
		return false
	}

	sets, err := s.resolve(fo)
	if err != nil {
		s.log().Warn("shaping: font setting ignored", "setting", setting, "err", err)
		return false
	}

	s.apply(fo, sets)
	w, h := s.FontBaseDimensions()
	s.log().Info("shaping: font changed", "font", fo.String(), "cell_width", w, "cell_height", h)
	return true
}

func (s *CachingShaper) resolve(fo FontOptions) ([]*FontSet, error) {
	sets := make([]*FontSet, 0, len(fo.Families))
	for _, name := range fo.Families {
		set, err := LookupFamily(name)
		if err != nil {
			s.log().Warn("shaping: font family skipped", "family", name, "err", err)
			continue
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, ErrNoFont
	}
	return sets, nil
}

func (s *CachingShaper) apply(fo FontOptions, sets []*FontSet) {
	primary := sets[0].Regular
	m := primary.Metrics(fo.Size)
	depth := primary.UnderlineDepth(fo.Size)

	// The cell width is the shaped advance, so glyph pens land on cell
	// boundaries. gg's face advance is hinted and drifts from it.
	width := s.shapeRun([]rune{'M'}, 0, 1, primary, fo.Size, 0, 0).Advance

	height := math.Ceil(m.Ascent + m.Descent)
	metrics := cellMetrics{
		width:     width,
		height:    height,
		ascent:    m.Ascent,
		underline: height - (m.Ascent + depth),
	}

	s.mu.Lock()
	s.options = fo
	s.sets = sets
	s.metrics = metrics
	s.gen++
	s.cache.Clear()
	s.mu.Unlock()
}

// ShapeCached returns the glyph runs for text in the requested style.
// Equal keys return the same runs until the font changes; callers must not
// modify them.
func (s *CachingShaper) ShapeCached(str string, bold, italic bool) []GlyphRun {
	if str == "" {
		return nil
	}
	key := shapeKey{text: norm.NFC.String(str), bold: bold, italic: italic}
	if runs, ok := s.cache.Get(key); ok {
		return runs
	}

	runs, gen := s.shape(key.text, bold, italic)
	s.mu.RLock()
	// A font change while shaping makes these runs stale.
	if gen == s.gen {
		s.cache.Set(key, runs)
	}
	s.mu.RUnlock()
	return runs
}

// shape splits text into runs by font coverage and shapes each run.
func (s *CachingShaper) shape(str string, bold, italic bool) ([]GlyphRun, uint64) {
	s.mu.RLock()
	fonts := make([]*Font, len(s.sets))
	for i, set := range s.sets {
		fonts[i] = set.Variant(bold, italic)
	}
	size := s.options.Size
	baseline := s.metrics.ascent
	gen := s.gen
	s.mu.RUnlock()

	runes := []rune(str)
	pick := func(r rune) *Font {
		for _, f := range fonts {
			if f.HasGlyph(r) {
				return f
			}
		}
		return fonts[0]
	}

	var runs []GlyphRun
	var x float64
	start := 0
	current := pick(runes[0])
	flush := func(end int) {
		run := s.shapeRun(runes, start, end, current, size, x, baseline)
		runs = append(runs, run)
		x += run.Advance
	}
	for i := 1; i < len(runes); i++ {
		// Spaces stay with the run they follow.
		if unicode.IsSpace(runes[i]) {
			continue
		}
		if f := pick(runes[i]); f != current {
			flush(i)
			start, current = i, f
		}
	}
	flush(len(runes))
	return runs, gen
}

func (s *CachingShaper) shapeRun(runes []rune, start, end int, f *Font, size, x, baseline float64) GlyphRun {
	input := gotext.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.shaped),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes[start:end]),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*gotext.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	run := GlyphRun{
		Font:   f,
		Size:   size,
		Glyphs: make([]Glyph, len(out.Glyphs)),
	}
	pen := x
	for i, g := range out.Glyphs {
		run.Glyphs[i] = Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph IDs fit in uint16
			X:       pen + fixedToFloat(g.XOffset),
			Y:       baseline - fixedToFloat(g.YOffset),
			Cluster: g.TextIndex(),
		}
		pen += fixedToFloat(g.Advance)
	}
	run.Advance = pen - x
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
