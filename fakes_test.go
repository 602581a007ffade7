// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"time"

	"github.com/gogpu/gridview/shaping"
	"github.com/gogpu/gridview/surface"
)

// fakeShaper has fixed metrics and one glyph per rune.
type fakeShaper struct {
	width, height float64
	size          float64
	underline     float64

	shaped  []string
	updates []string
	// fonts maps settings UpdateFont accepts to the cell size they select.
	fonts map[string][2]float64
}

func newFakeShaper() *fakeShaper {
	return &fakeShaper{width: 8, height: 16, size: 20, underline: 3}
}

func (f *fakeShaper) FontBaseDimensions() (float64, float64) { return f.width, f.height }
func (f *fakeShaper) UnderlinePosition() float64             { return f.underline }
func (f *fakeShaper) FontSize() float64                      { return f.size }

func (f *fakeShaper) ShapeCached(text string, bold, italic bool) []shaping.GlyphRun {
	f.shaped = append(f.shaped, text)
	run := shaping.GlyphRun{Size: f.size}
	for i := range []rune(text) {
		run.Glyphs = append(run.Glyphs, shaping.Glyph{X: float64(i) * f.width, Cluster: i})
	}
	run.Advance = float64(len(run.Glyphs)) * f.width
	return []shaping.GlyphRun{run}
}

func (f *fakeShaper) UpdateFont(setting string) bool {
	f.updates = append(f.updates, setting)
	dims, ok := f.fonts[setting]
	if !ok || (dims[0] == f.width && dims[1] == f.height) {
		return false
	}
	f.width, f.height = dims[0], dims[1]
	return true
}

// frameQueue serves frames in order and repeats the last one.
type frameQueue struct {
	frames []Frame
	taken  int
}

func (q *frameQueue) Snapshot() Frame {
	i := min(q.taken, len(q.frames)-1)
	q.taken++
	return q.frames[i]
}

func (q *frameQueue) push(f Frame) {
	q.frames = append(q.frames, f)
}

type countingScheduler struct {
	calls int
}

func (s *countingScheduler) QueueNextFrame() { s.calls++ }

type cursorCall struct {
	cursor   Cursor
	defaults Colors
	metrics  FontMetrics
	target   surface.Surface
	dt       time.Duration
}

type recordingCursor struct {
	calls []cursorCall
}

func (c *recordingCursor) Draw(cur Cursor, defaults Colors, m FontMetrics, _ Shaper, target surface.Surface, dt time.Duration) {
	c.calls = append(c.calls, cursorCall{cursor: cur, defaults: defaults, metrics: m, target: target, dt: dt})
}

// recorderAllocator hands out Recorders and remembers them.
type recorderAllocator struct {
	made []*surface.Recorder
	fail error
}

func (a *recorderAllocator) allocate(w, h int) (surface.Surface, error) {
	if a.fail != nil {
		return nil, a.fail
	}
	r := surface.NewRecorder(w, h)
	a.made = append(a.made, r)
	return r, nil
}
