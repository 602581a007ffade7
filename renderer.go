// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/gridview/shaping"
	"github.com/gogpu/gridview/surface"
)

// Renderer draws editor frames. It keeps one cached surface per window,
// animates window movement and composites the windows onto a root target.
//
// Draw must be called from a single goroutine. The Renderer owns its window
// cache exclusively and needs no locking.
type Renderer struct {
	source    SnapshotSource
	shaper    Shaper
	cursor    CursorRenderer
	scheduler Scheduler
	allocate  surface.Allocator
	logger    *slog.Logger

	metrics FontMetrics
	windows map[uint64]*renderedWindow
	regions []WindowRegion
}

// NewRenderer creates a renderer reading frames from source.
func NewRenderer(source SnapshotSource, opts ...RendererOption) (*Renderer, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		source:    source,
		shaper:    o.shaper,
		cursor:    o.cursor,
		scheduler: o.scheduler,
		allocate:  o.allocate,
		logger:    o.logger,
		windows:   make(map[uint64]*renderedWindow),
	}

	if r.shaper == nil {
		s, err := shaping.NewCachingShaper(shaping.WithLogger(r.log()))
		if err != nil {
			return nil, fmt.Errorf("gridview: default shaper: %w", err)
		}
		r.shaper = s
	}
	if r.allocate == nil {
		a, err := surface.Lookup(o.backend)
		if err != nil {
			return nil, fmt.Errorf("gridview: %w", err)
		}
		r.allocate = a
	}

	r.refreshMetrics()
	r.log().Info("gridview: renderer created",
		"cell_width", r.metrics.Width, "cell_height", r.metrics.Height)
	return r, nil
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// refreshMetrics reloads the cell size from the shaper. Heights are
// rounded up to whole pixels so rows never overlap.
func (r *Renderer) refreshMetrics() {
	w, h := r.shaper.FontBaseDimensions()
	r.metrics = FontMetrics{Width: w, Height: math.Ceil(h)}
}

// FontMetrics returns the current cell size.
func (r *Renderer) FontMetrics() FontMetrics {
	return r.metrics
}

// Shaper returns the shaping cache in use.
func (r *Renderer) Shaper() Shaper {
	return r.shaper
}

// WindowRegions returns the on-screen window rectangles of the last frame,
// in drawing order. The slice is replaced, not modified, by later frames.
func (r *Renderer) WindowRegions() []WindowRegion {
	return r.regions
}

// Draw renders one frame onto target and reports whether the font changed,
// in which case the host may need to renegotiate window sizes.
//
// A surface allocation failure aborts the frame with an error matching
// ErrSurfaceAllocation.
func (r *Renderer) Draw(target surface.Surface, coords CoordinateSystem, dt time.Duration) (bool, error) {
	if r.scheduler != nil {
		r.scheduler.QueueNextFrame()
	}

	frame := r.source.Snapshot()
	defaults := frame.DefaultColors()

	target.Clear(frame.DefaultStyle.Background(defaults))

	fontChanged := false
	if frame.FontSetting != "" {
		fontChanged = r.updateFont(frame.FontSetting)
	}

	for _, id := range frame.Info.ClosedWindowIDs {
		r.evict(id)
	}

	target.SetTransform(coords.Transform())

	regions := make([]WindowRegion, 0, len(frame.Info.Windows))
	for i := range frame.Info.Windows {
		region, err := r.drawWindow(target, &frame.Info.Windows[i], defaults)
		if err != nil {
			return fontChanged, err
		}
		regions = append(regions, region)
	}
	r.regions = regions

	if r.cursor != nil {
		r.cursor.Draw(frame.Cursor, defaults, r.metrics, r.shaper, target, dt)
	}

	r.log().Debug("gridview: frame drawn",
		"windows", len(regions), "cached", len(r.windows), "dt", dt)
	return fontChanged, nil
}

func (r *Renderer) updateFont(setting string) bool {
	if !r.shaper.UpdateFont(setting) {
		return false
	}
	r.refreshMetrics()
	r.log().Info("gridview: font metrics changed",
		"setting", setting, "cell_width", r.metrics.Width, "cell_height", r.metrics.Height)
	return true
}

// evict drops the cached window and releases its surface.
func (r *Renderer) evict(id uint64) {
	w, ok := r.windows[id]
	if !ok {
		return
	}
	delete(r.windows, id)
	r.release(id, w.surface)
	r.log().Debug("gridview: window evicted", "grid", id)
}

func (r *Renderer) release(id uint64, s surface.Surface) {
	if err := s.Close(); err != nil {
		r.log().Warn("gridview: release surface", "grid", id, "err", err)
	}
}

// Close releases every cached window surface.
func (r *Renderer) Close() error {
	var errs []error
	for id, w := range r.windows {
		if err := w.surface.Close(); err != nil {
			errs = append(errs, fmt.Errorf("window %d: %w", id, err))
		}
	}
	clear(r.windows)
	r.regions = nil
	return errors.Join(errs...)
}
