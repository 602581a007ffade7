// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import "github.com/gogpu/gridview/surface"

// FontMetrics is the pixel size of one grid cell.
type FontMetrics struct {
	Width, Height float64
}

// Region returns the pixel rectangle covered by cells cells starting at
// (col, row).
func (m FontMetrics) Region(col, row, cells int) surface.Rect {
	x := float64(col) * m.Width
	y := float64(row) * m.Height
	return surface.Rect{
		Left:   x,
		Top:    y,
		Right:  x + float64(cells)*m.Width,
		Bottom: y + m.Height,
	}
}

// Point converts a grid position to pixels.
func (m FontMetrics) Point(p GridPoint) surface.Point {
	return surface.Point{X: p.X * m.Width, Y: p.Y * m.Height}
}

// SurfaceSize returns the pixel size of a window of cols x rows cells,
// truncated to whole pixels.
func (m FontMetrics) SurfaceSize(cols, rows int) (w, h int) {
	return int(float64(cols) * m.Width), int(float64(rows) * m.Height)
}

// CoordinateSystem maps logical pixels to device pixels on the root target.
type CoordinateSystem struct {
	// Scale is the device pixel ratio. Zero means 1.
	Scale float64
}

// Transform returns the surface transform for the coordinate system.
func (c CoordinateSystem) Transform() surface.Transform {
	if c.Scale == 0 {
		return surface.Identity()
	}
	return surface.ScaleTransform(c.Scale)
}
