// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawing-surface abstraction used by gridview.
//
// A Surface is an off-screen (or on-screen) pixel buffer exposing only the
// operations the frame renderer needs: clearing, rectangle fills, lines,
// glyph runs, compositing another surface, and a save/restore stack for
// clipping and transforms. Renderer code depends on this interface only and
// never on backend internals.
//
// # Surface Types
//
//   - ImageSurface: rendering through a gg.Context. When the gg GPU
//     accelerator is registered (import _ "github.com/gogpu/gg/gpu"), fills
//     and strokes are GPU-accelerated with CPU fallback.
//   - Recorder: records every call as a Command without producing pixels.
//     Useful for tests and for inspecting what a frame draws.
//
// # Registry
//
// Backends register a factory under a name and priority:
//
//	surface.Register("vulkan", 100, vulkanFactory, vulkanAvailable)
//
//	// Later:
//	s, err := surface.NewSurfaceByName("vulkan", 800, 600)
//
//	// or auto-select the best available backend:
//	s, err := surface.NewSurface(800, 600)
//
// The built-in "image" backend (ImageSurface) is registered at priority 10.
//
// # Usage
//
//	s, err := surface.NewImageSurface(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.Clear(gg.RGB(0, 0, 0))
//	s.FillRect(surface.RectXYWH(10, 10, 100, 20), gg.RGB(1, 0, 0))
//	img := s.Snapshot()
package surface
