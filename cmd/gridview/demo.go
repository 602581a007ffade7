// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/config"
	"github.com/gogpu/gridview/editor"
	"github.com/gogpu/gridview/highlight"
)

// Window ids.
const (
	bufferGrid uint64 = iota + 1
	statusGrid
	floatGrid
)

const sample = `package main

import "fmt"

// Greeter says hello.
type Greeter struct {
	Name string
}

func (g Greeter) Greet() string {
	return fmt.Sprintf("hello, %s 世界", g.Name)
}

func main() {
	fmt.Println(Greeter{Name: "gridview"}.Greet())
}
`

// demo lays out a buffer window, a status line and a floating window that
// drifts across the buffer.
type demo struct {
	ed     *editor.Editor
	cols   int
	rows   int
	lines  []string
	cursor gridview.Cursor
}

func newDemo(ed *editor.Editor, hl *highlight.Highlighter, cfg config.Config, name, source string) (*demo, error) {
	cols, rows := cfg.Window.Columns, cfg.Window.Rows
	d := &demo{ed: ed, cols: cols, rows: rows}

	style, err := defaultStyle(hl, cfg.Colors)
	if err != nil {
		return nil, err
	}
	ed.SetDefaultStyle(style)
	ed.SetFont(cfg.Font)

	lines, err := hl.File(name, source)
	if err != nil {
		return nil, err
	}

	bufferRows := max(rows-1, 1)
	if err := ed.OpenWindow(bufferGrid, 0, 0, cols, bufferRows); err != nil {
		return nil, err
	}
	for row, line := range lines {
		if row >= bufferRows {
			break
		}
		col := 0
		for _, span := range line {
			if col >= cols {
				break
			}
			if col, err = ed.PutText(bufferGrid, col, row, span.Text, span.Style); err != nil {
				return nil, err
			}
		}
	}

	if rows > 1 {
		if err := ed.OpenWindow(statusGrid, 0, float64(rows-1), cols, 1); err != nil {
			return nil, err
		}
		status := &gridview.Style{Reverse: true, Bold: true}
		text := fmt.Sprintf(" %s  %s  %d lines", name, hl.Language(name, []byte(source)), len(lines))
		if _, err := ed.PutText(statusGrid, 0, 0, padRight(text, cols), status); err != nil {
			return nil, err
		}
	}

	const floatCols, floatRows = 24, 4
	if cols > floatCols && rows > floatRows+2 {
		if err := ed.OpenWindow(floatGrid, float64(cols-floatCols-2), 1, floatCols, floatRows); err != nil {
			return nil, err
		}
		border := &gridview.Style{Reverse: true}
		note := &gridview.Style{Italic: true, Undercurl: true}
		for row := range floatRows {
			if _, err := ed.PutText(floatGrid, 0, row, padRight("", floatCols), border); err != nil {
				return nil, err
			}
		}
		if _, err := ed.PutText(floatGrid, 1, 1, " floating window ", note); err != nil {
			return nil, err
		}
		if _, err := ed.PutText(floatGrid, 1, 2, " ~strike~ ", &gridview.Style{Strikethrough: true, Reverse: true}); err != nil {
			return nil, err
		}
	}

	for _, line := range lines {
		d.lines = append(d.lines, line.Text())
	}
	d.cursor = cfg.Cursor.Settings()
	d.cursor.Row = min(5, bufferRows-1)
	d.cursor.Character = d.char(0, d.cursor.Row)
	ed.SetCursor(d.cursor)
	return d, nil
}

// step moves the floating window and the cursor for a frame.
func (d *demo) step(frame int) {
	t := float64(frame) / 10
	x := float64(d.cols-26) - 6*(1+math.Sin(t))
	_ = d.ed.MoveWindow(floatGrid, max(x, 0), 1+math.Round(1+math.Cos(t)))

	if frame%8 == 0 {
		c := d.cursor
		c.Col = (frame / 8) % max(d.cols/4, 1)
		c.Character = d.char(c.Col, c.Row)
		d.ed.SetCursor(c)
	}
}

// defaultStyle merges configured colors over the theme's.
func defaultStyle(hl *highlight.Highlighter, colors config.Colors) (*gridview.Style, error) {
	style := hl.DefaultStyle()
	override, err := colors.Style()
	if err != nil {
		return nil, err
	}
	if override.Colors.Foreground != nil {
		style.Colors.Foreground = override.Colors.Foreground
	}
	if override.Colors.Background != nil {
		style.Colors.Background = override.Colors.Background
	}
	if override.Colors.Special != nil {
		style.Colors.Special = override.Colors.Special
	}
	return style, nil
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + fmt.Sprintf("%*s", n, "")
	}
	return s
}

// char returns the character shown at (col, row) of the buffer, counting
// one cell per rune.
func (d *demo) char(col, row int) string {
	if row >= len(d.lines) {
		return ""
	}
	runes := []rune(d.lines[row])
	if col >= len(runes) || runes[col] == '\t' {
		return ""
	}
	return string(runes[col])
}
