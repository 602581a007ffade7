// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package shaping turns text into positioned glyph runs for grid rendering.
//
// The pipeline has three layers:
//
//   - Font: one parsed font file. Metrics and outlines come from gg's text
//     package, shaping data from go-text/typesetting.
//   - FontSet: the regular/bold/italic/bold-italic variants of a family.
//     Families are registered by name; "Go Mono" and "Go" are built in.
//   - CachingShaper: HarfBuzz shaping with fallback across a list of
//     families and a cache keyed by (text, bold, italic).
//
// # Font settings
//
// Fonts are selected with a setting string:
//
//	Go_Mono,Go:h16
//
// lists families in fallback order followed by the pixel size. Underscores
// stand for spaces, and a family name ending in .ttf or .otf is read from
// disk.
//
// # Example
//
//	s, err := shaping.NewCachingShaper(shaping.WithFont("Go Mono:h16"))
//	if err != nil {
//	    return err
//	}
//	w, h := s.FontBaseDimensions()
//	runs := s.ShapeCached("hello", false, false)
package shaping
