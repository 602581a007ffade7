// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"github.com/gogpu/gridview/surface"
)

// positionSmoothing is the fraction of the remaining distance a window
// moves toward its target each frame. The step is per frame, not per unit
// of time, so animation speed follows the frame rate.
const positionSmoothing = 0.4

// renderedWindow is the cached state of one window.
type renderedWindow struct {
	surface  surface.Surface
	position surface.Point
}

// WindowState is the cached state of a window as seen from outside.
type WindowState struct {
	// Position is the smoothed on-screen position in pixels.
	Position surface.Point

	// Width and Height are the surface size in pixels.
	Width, Height int
}

// Window returns the cached state of a window, if any.
func (r *Renderer) Window(id uint64) (WindowState, bool) {
	w, ok := r.windows[id]
	if !ok {
		return WindowState{}, false
	}
	return WindowState{
		Position: w.position,
		Width:    w.surface.Width(),
		Height:   w.surface.Height(),
	}, true
}

// drawWindow brings the window's cached surface up to date, repaints it
// and composites it onto target at its smoothed position.
func (r *Renderer) drawWindow(target surface.Surface, info *WindowRenderInfo, defaults Colors) (WindowRegion, error) {
	goal := r.metrics.Point(info.Position)
	width, height := r.metrics.SurfaceSize(info.Width, info.Height)
	background := (*Style)(nil).Background(defaults)

	w, ok := r.windows[info.GridID]
	switch {
	case info.ShouldClear || !ok:
		if ok {
			r.evict(info.GridID)
		}
		s, err := r.newSurface(info.GridID, width, height, background)
		if err != nil {
			return WindowRegion{}, err
		}
		w = &renderedWindow{surface: s, position: goal}
		r.windows[info.GridID] = w

	case w.surface.Width() != width || w.surface.Height() != height:
		s, err := r.newSurface(info.GridID, width, height, background)
		if err != nil {
			return WindowRegion{}, err
		}
		s.CopySurface(w.surface, surface.Point{})
		r.release(info.GridID, w.surface)
		w.surface = s
	}

	w.position = surface.Point{
		X: w.position.X + (goal.X-w.position.X)*positionSmoothing,
		Y: w.position.Y + (goal.Y-w.position.Y)*positionSmoothing,
	}

	r.drawCommands(w.surface, info.DrawCommands, defaults)

	target.Save()
	target.DrawSurface(w.surface, w.position)
	target.Restore()

	return WindowRegion{
		GridID: info.GridID,
		Rect: surface.Rect{
			Left:   w.position.X,
			Top:    w.position.Y,
			Right:  w.position.X + float64(width),
			Bottom: w.position.Y + float64(height),
		},
	}, nil
}

// newSurface allocates a window surface cleared to the default background.
func (r *Renderer) newSurface(id uint64, width, height int, background Color) (surface.Surface, error) {
	s, err := r.allocate(width, height)
	if err != nil {
		return nil, &SurfaceError{GridID: id, Width: width, Height: height, Err: err}
	}
	s.Clear(background)
	r.log().Debug("gridview: window surface allocated", "grid", id, "width", width, "height", height)
	return s, nil
}
