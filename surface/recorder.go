// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/gridview/shaping"
)

// Op identifies the kind of a recorded Command.
type Op uint8

// Recorded operations.
const (
	OpClear Op = iota
	OpFillRect
	OpDrawLine
	OpDrawGlyphRun
	OpDrawSurface
	OpCopySurface
	OpSave
	OpRestore
	OpClipRect
	OpSetTransform
)

var opNames = [...]string{
	OpClear:        "Clear",
	OpFillRect:     "FillRect",
	OpDrawLine:     "DrawLine",
	OpDrawGlyphRun: "DrawGlyphRun",
	OpDrawSurface:  "DrawSurface",
	OpCopySurface:  "CopySurface",
	OpSave:         "Save",
	OpRestore:      "Restore",
	OpClipRect:     "ClipRect",
	OpSetTransform: "SetTransform",
}

// String returns the operation name.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Unknown"
}

// Command is one recorded surface call. Only the fields relevant to Op are
// set.
type Command struct {
	Op        Op
	Color     gg.RGBA
	Rect      Rect
	From, To  Point
	Line      LineStyle
	Run       shaping.GlyphRun
	Source    Surface
	Transform Transform
}

// Recorder is a Surface that records calls instead of producing pixels.
type Recorder struct {
	width, height int
	commands      []Command
	depth         int
	closed        bool
}

// NewRecorder creates a Recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Commands returns the recorded calls in order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Ops returns the operations of the recorded calls in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.commands))
	for i, c := range r.commands {
		ops[i] = c.Op
	}
	return ops
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.depth = 0
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return r.depth
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool {
	return r.closed
}

func (r *Recorder) add(c Command) {
	r.commands = append(r.commands, c)
}

// Width implements Surface.
func (r *Recorder) Width() int { return r.width }

// Height implements Surface.
func (r *Recorder) Height() int { return r.height }

// Clear implements Surface.
func (r *Recorder) Clear(c gg.RGBA) {
	r.add(Command{Op: OpClear, Color: c})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(rect Rect, c gg.RGBA) {
	r.add(Command{Op: OpFillRect, Rect: rect, Color: c})
}

// DrawLine implements Surface.
func (r *Recorder) DrawLine(from, to Point, style LineStyle) {
	r.add(Command{Op: OpDrawLine, From: from, To: to, Line: style, Color: style.Color})
}

// DrawGlyphRun implements Surface.
func (r *Recorder) DrawGlyphRun(run shaping.GlyphRun, origin Point, c gg.RGBA) {
	r.add(Command{Op: OpDrawGlyphRun, Run: run, From: origin, Color: c})
}

// DrawSurface implements Surface.
func (r *Recorder) DrawSurface(src Surface, at Point) {
	r.add(Command{Op: OpDrawSurface, Source: src, From: at})
}

// CopySurface implements Surface.
func (r *Recorder) CopySurface(src Surface, at Point) {
	r.add(Command{Op: OpCopySurface, Source: src, From: at})
}

// Save implements Surface.
func (r *Recorder) Save() {
	r.depth++
	r.add(Command{Op: OpSave})
}

// Restore implements Surface.
func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.add(Command{Op: OpRestore})
}

// ClipRect implements Surface.
func (r *Recorder) ClipRect(rect Rect) {
	r.add(Command{Op: OpClipRect, Rect: rect})
}

// SetTransform implements Surface.
func (r *Recorder) SetTransform(t Transform) {
	r.add(Command{Op: OpSetTransform, Transform: t})
}

// Snapshot implements Surface. A Recorder has no pixels.
func (r *Recorder) Snapshot() *image.RGBA {
	return nil
}

// Close implements Surface.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}
