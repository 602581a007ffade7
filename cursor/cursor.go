// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cursor

import (
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/surface"
)

// Defaults.
const (
	// DefaultAnimationLength is the time the cursor takes to reach a new cell.
	DefaultAnimationLength = 80 * time.Millisecond

	// DefaultCellPercentage is the share of the cell covered by vertical and
	// horizontal cursors when the frame does not set one.
	DefaultCellPercentage = 0.25
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithAnimationLength sets how long the cursor takes to reach a new cell.
// Zero or less disables the animation.
func WithAnimationLength(d time.Duration) Option {
	return func(r *Renderer) {
		r.animation = d
	}
}

// WithLogger sets the renderer's logger. By default gridview.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// Renderer draws the cursor. It is used from the render goroutine only.
type Renderer struct {
	animation time.Duration
	logger    *slog.Logger

	placed   bool
	position surface.Point
	// start is where the current animation began.
	start    surface.Point
	progress time.Duration

	cell    [2]int
	visible bool
	blink   blinker
}

// New creates a cursor renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{animation: DefaultAnimationLength}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return gridview.Logger()
}

// Position returns the animated top-left corner of the cursor cell in
// pixels.
func (r *Renderer) Position() surface.Point {
	return r.position
}

// Visible reports whether the last Draw showed the cursor.
func (r *Renderer) Visible() bool {
	return r.visible
}

// Draw implements gridview.CursorRenderer.
func (r *Renderer) Draw(c gridview.Cursor, defaults gridview.Colors, metrics gridview.FontMetrics,
	shaper gridview.Shaper, target surface.Surface, dt time.Duration) {
	goal := metrics.Point(gridview.GridPoint{X: float64(c.Col), Y: float64(c.Row)})
	r.move(goal, [2]int{c.Col, c.Row}, dt)

	r.visible = c.Enabled && r.blink.advance(c, dt)
	if !r.visible {
		return
	}

	cell := surface.Rect{
		Left:   r.position.X,
		Top:    r.position.Y,
		Right:  r.position.X + metrics.Width,
		Bottom: r.position.Y + metrics.Height,
	}
	fill, ink := colors(c.Style, defaults)

	target.Save()
	defer target.Restore()

	switch c.Shape {
	case gridview.CursorVertical:
		target.FillRect(surface.Rect{
			Left:   cell.Left,
			Top:    cell.Top,
			Right:  cell.Left + cell.Width()*percentage(c),
			Bottom: cell.Bottom,
		}, fill)
	case gridview.CursorHorizontal:
		target.FillRect(surface.Rect{
			Left:   cell.Left,
			Top:    cell.Bottom - cell.Height()*percentage(c),
			Right:  cell.Right,
			Bottom: cell.Bottom,
		}, fill)
	default:
		target.ClipRect(cell)
		target.FillRect(cell, fill)
		text := strings.TrimRightFunc(c.Character, unicode.IsSpace)
		if text == "" || shaper == nil {
			return
		}
		bold, italic := false, false
		if c.Style != nil {
			bold, italic = c.Style.Bold, c.Style.Italic
		}
		for _, run := range shaper.ShapeCached(text, bold, italic) {
			target.DrawGlyphRun(run, cell.Min(), ink)
		}
	}
}

// move advances the position animation. Moving to a new cell restarts
// both the animation and the blink cycle.
func (r *Renderer) move(goal surface.Point, cell [2]int, dt time.Duration) {
	if !r.placed || r.animation <= 0 {
		r.placed = true
		r.position, r.start = goal, goal
		r.progress = r.animation
		r.cell = cell
		return
	}
	if cell != r.cell {
		r.cell = cell
		r.start = r.position
		r.progress = 0
		r.blink.reset()
		r.log().Debug("cursor: moving", "col", cell[0], "row", cell[1])
	}

	r.progress = min(r.progress+dt, r.animation)
	t := easeOutCubic(float64(r.progress) / float64(r.animation))
	r.position = surface.Point{
		X: r.start.X + (goal.X-r.start.X)*t,
		Y: r.start.Y + (goal.Y-r.start.Y)*t,
	}
}

// colors returns the cursor fill and the color of the character drawn on
// it. Without a style the default colors are inverted.
func colors(style *gridview.Style, defaults gridview.Colors) (fill, ink gridview.Color) {
	if style == nil {
		return style.Foreground(defaults), style.Background(defaults)
	}
	return style.Background(defaults), style.Foreground(defaults)
}

func percentage(c gridview.Cursor) float64 {
	if c.CellPercentage <= 0 || c.CellPercentage > 1 {
		return DefaultCellPercentage
	}
	return c.CellPercentage
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
