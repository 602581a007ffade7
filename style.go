// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import "github.com/gogpu/gg"

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color = gg.RGBA

// Fallbacks used when neither a style nor the default style sets a channel.
var (
	fallbackForeground = gg.RGB(1, 1, 1)
	fallbackBackground = gg.RGB(0, 0, 0)
)

// Colors holds optional color channels. A nil channel is unset.
type Colors struct {
	Foreground *Color
	Background *Color
	Special    *Color
}

// Style is the appearance of a run of cells.
//
// Styles are shared by pointer between draw commands and must not be
// modified once a frame referencing them has been published.
type Style struct {
	Colors

	Reverse       bool
	Italic        bool
	Bold          bool
	Strikethrough bool
	Underline     bool
	Undercurl     bool
}

// Foreground returns the text color. The style's own channel wins over
// defaults. Reverse swaps foreground and background. A nil style resolves
// entirely from defaults.
func (s *Style) Foreground(defaults Colors) Color {
	if s != nil && s.Reverse {
		return s.background(defaults)
	}
	return s.foreground(defaults)
}

// Background returns the fill color of the cells.
func (s *Style) Background(defaults Colors) Color {
	if s != nil && s.Reverse {
		return s.foreground(defaults)
	}
	return s.background(defaults)
}

// Special returns the color used for underline, undercurl and
// strikethrough. It falls back to the foreground.
func (s *Style) Special(defaults Colors) Color {
	if s != nil && s.Colors.Special != nil {
		return *s.Colors.Special
	}
	if defaults.Special != nil {
		return *defaults.Special
	}
	return s.Foreground(defaults)
}

func (s *Style) foreground(defaults Colors) Color {
	if s != nil && s.Colors.Foreground != nil {
		return *s.Colors.Foreground
	}
	if defaults.Foreground != nil {
		return *defaults.Foreground
	}
	return fallbackForeground
}

func (s *Style) background(defaults Colors) Color {
	if s != nil && s.Colors.Background != nil {
		return *s.Colors.Background
	}
	if defaults.Background != nil {
		return *defaults.Background
	}
	return fallbackBackground
}

// Decorated reports whether the style draws any line decoration.
func (s *Style) Decorated() bool {
	return s != nil && (s.Underline || s.Undercurl || s.Strikethrough)
}

// ColorPtr returns a pointer to a copy of c, for filling Colors literals.
func ColorPtr(c Color) *Color {
	return &c
}
