// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/gg"

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH creates a Rect from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// CenterY returns the vertical center of r.
func (r Rect) CenterY() float64 {
	return (r.Top + r.Bottom) / 2
}

// Min returns the top-left corner of r.
func (r Rect) Min() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// LineStyle defines how DrawLine strokes a line.
type LineStyle struct {
	// Color is the stroke color.
	Color gg.RGBA

	// Width is the line width in pixels. Zero draws a one-pixel hairline.
	Width float64

	// Dash is the dash/gap pattern. nil or empty means a solid line.
	Dash []float64
}

// IsDashed reports whether the style strokes a dashed line.
func (s LineStyle) IsDashed() bool {
	return len(s.Dash) > 0
}

// Transform is a scale followed by a translation, mapping logical
// coordinates to device pixels: device = logical*Scale + Translate.
type Transform struct {
	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// ScaleTransform returns a uniform scale transform.
func ScaleTransform(s float64) Transform {
	return Transform{ScaleX: s, ScaleY: s}
}

// Options configures surface creation through the registry.
type Options struct {
	// Width and Height are the surface dimensions in pixels.
	Width, Height int
}
