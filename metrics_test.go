// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"testing"

	"github.com/gogpu/gridview/surface"
)

func TestFontMetricsRegion(t *testing.T) {
	m := FontMetrics{Width: 8, Height: 16}

	tests := []struct {
		col, row, cells int
		want            surface.Rect
	}{
		{0, 0, 1, surface.Rect{Left: 0, Top: 0, Right: 8, Bottom: 16}},
		{2, 1, 3, surface.Rect{Left: 16, Top: 16, Right: 40, Bottom: 32}},
		{5, 0, 0, surface.Rect{Left: 40, Top: 0, Right: 40, Bottom: 16}},
	}
	for _, tt := range tests {
		if got := m.Region(tt.col, tt.row, tt.cells); got != tt.want {
			t.Errorf("Region(%d, %d, %d) = %+v, want %+v", tt.col, tt.row, tt.cells, got, tt.want)
		}
	}
}

func TestFontMetricsRegionCoversCells(t *testing.T) {
	m := FontMetrics{Width: 7.5, Height: 17}
	for col := range 10 {
		for row := range 5 {
			for cells := 1; cells <= 4; cells++ {
				r := m.Region(col, row, cells)
				if r.Width() != float64(cells)*m.Width || r.Height() != m.Height {
					t.Fatalf("Region(%d, %d, %d) size = %vx%v", col, row, cells, r.Width(), r.Height())
				}
				next := m.Region(col+cells, row, 1)
				if next.Left != r.Right {
					t.Fatalf("Region(%d, %d, %d) does not abut the next cell", col, row, cells)
				}
			}
		}
	}
}

func TestFontMetricsPointAndSize(t *testing.T) {
	m := FontMetrics{Width: 7.5, Height: 16}
	if got := m.Point(GridPoint{X: 2, Y: 1.5}); got != (surface.Point{X: 15, Y: 24}) {
		t.Errorf("Point() = %+v", got)
	}
	w, h := m.SurfaceSize(3, 2)
	if w != 22 || h != 32 {
		t.Errorf("SurfaceSize(3, 2) = %d, %d, want 22, 32", w, h)
	}
}

func TestCoordinateSystemTransform(t *testing.T) {
	if got := (CoordinateSystem{}).Transform(); got != surface.Identity() {
		t.Errorf("zero scale = %+v, want identity", got)
	}
	if got := (CoordinateSystem{Scale: 2}).Transform(); got != surface.ScaleTransform(2) {
		t.Errorf("scale 2 = %+v", got)
	}
}
