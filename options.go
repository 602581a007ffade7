// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"log/slog"

	"github.com/gogpu/gridview/surface"
)

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Defaults: Go Mono shaper, image surfaces, no cursor
//	r, err := gridview.NewRenderer(ed)
//
//	// Injected collaborators
//	r, err := gridview.NewRenderer(ed,
//	    gridview.WithShaper(shaper),
//	    gridview.WithCursorRenderer(cursor.New()),
//	    gridview.WithScheduler(sched),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	shaper    Shaper
	cursor    CursorRenderer
	scheduler Scheduler
	allocate  surface.Allocator
	backend   string
	logger    *slog.Logger
}

// WithShaper sets the shaping cache. By default a shaping.CachingShaper
// with Go Mono at 14 pixels is created.
func WithShaper(s Shaper) RendererOption {
	return func(o *rendererOptions) {
		o.shaper = s
	}
}

// WithCursorRenderer sets the cursor overlay drawn last in every frame.
// Without one no cursor is drawn.
func WithCursorRenderer(c CursorRenderer) RendererOption {
	return func(o *rendererOptions) {
		o.cursor = c
	}
}

// WithScheduler sets the scheduler asked for the next frame at the start of
// every Draw.
func WithScheduler(s Scheduler) RendererOption {
	return func(o *rendererOptions) {
		o.scheduler = s
	}
}

// WithSurfaceAllocator sets the function that allocates window surfaces.
// It takes precedence over WithSurfaceBackend.
func WithSurfaceAllocator(a surface.Allocator) RendererOption {
	return func(o *rendererOptions) {
		o.allocate = a
	}
}

// WithSurfaceBackend selects a registered surface backend by name.
// By default the best available backend is used.
func WithSurfaceBackend(name string) RendererOption {
	return func(o *rendererOptions) {
		o.backend = name
	}
}

// WithLogger sets the renderer's logger. By default the package Logger is
// used.
func WithLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
