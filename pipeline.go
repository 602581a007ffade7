// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"strings"
	"unicode"

	"github.com/gogpu/gridview/surface"
)

// noStyle stands in for commands without a style: default colors and no
// decorations.
var noStyle = &Style{}

// drawCommands repaints a window. Every background is filled before any
// foreground is drawn, so glyphs that overhang their cells are not covered
// by a neighbour's background.
func (r *Renderer) drawCommands(s surface.Surface, commands []DrawCommand, defaults Colors) {
	for i := range commands {
		r.drawBackground(s, &commands[i], defaults)
	}
	for i := range commands {
		r.drawForeground(s, &commands[i], defaults)
	}
}

func (r *Renderer) drawBackground(s surface.Surface, cmd *DrawCommand, defaults Colors) {
	style := cmd.Style
	if style == nil {
		style = noStyle
	}
	s.FillRect(r.metrics.Region(cmd.Col, cmd.Row, cmd.Width), style.Background(defaults))
}

func (r *Renderer) drawForeground(s surface.Surface, cmd *DrawCommand, defaults Colors) {
	style := cmd.Style
	if style == nil {
		style = noStyle
	}
	region := r.metrics.Region(cmd.Col, cmd.Row, cmd.Width)

	s.Save()
	defer s.Restore()
	s.ClipRect(region)

	stroke := r.shaper.FontSize() / 10

	if style.Underline || style.Undercurl {
		y := region.Top + r.metrics.Height - r.shaper.UnderlinePosition()
		line := surface.LineStyle{Color: style.Special(defaults), Width: stroke}
		if style.Undercurl {
			line.Dash = []float64{stroke * 2, stroke * 2}
		}
		s.DrawLine(surface.Point{X: region.Left, Y: y}, surface.Point{X: region.Right, Y: y}, line)
	}

	if text := strings.TrimRightFunc(cmd.Text, unicode.IsSpace); text != "" {
		fg := style.Foreground(defaults)
		for _, run := range r.shaper.ShapeCached(text, style.Bold, style.Italic) {
			s.DrawGlyphRun(run, region.Min(), fg)
		}
	}

	if style.Strikethrough {
		y := region.CenterY()
		line := surface.LineStyle{Color: style.Special(defaults), Width: stroke}
		s.DrawLine(surface.Point{X: region.Left, Y: y}, surface.Point{X: region.Right, Y: y}, line)
	}
}
