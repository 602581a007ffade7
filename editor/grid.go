// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/gogpu/gridview"
)

// blank is the content of an empty cell.
const blank = " "

// cell is one grid cell. A continuation cell is the right half of the wide
// cluster in the cell before it.
type cell struct {
	text  string
	style *gridview.Style
	cont  bool
}

// grid is the content and placement of one window.
type grid struct {
	id       uint64
	position gridview.GridPoint
	cols     int
	rows     int
	cells    []cell
	clear    bool
}

func newGrid(id uint64, position gridview.GridPoint, cols, rows int) *grid {
	g := &grid{id: id, position: position, cols: cols, rows: rows, clear: true}
	g.cells = make([]cell, cols*rows)
	g.reset()
	return g
}

func (g *grid) reset() {
	for i := range g.cells {
		g.cells[i] = cell{text: blank}
	}
}

func (g *grid) at(col, row int) *cell {
	return &g.cells[row*g.cols+col]
}

// resize keeps the cells that still fit. A wide cluster cut in half by the
// new right edge becomes blank.
func (g *grid) resize(cols, rows int) {
	cells := make([]cell, cols*rows)
	for i := range cells {
		cells[i] = cell{text: blank}
	}
	for row := range min(rows, g.rows) {
		for col := range min(cols, g.cols) {
			cells[row*cols+col] = *g.at(col, row)
		}
		if cols < g.cols && cols > 0 {
			last := &cells[row*cols+cols-1]
			if next := g.at(cols, row); next.cont {
				*last = cell{text: blank, style: last.style}
			}
		}
	}
	g.cols, g.rows, g.cells = cols, rows, cells
}

// put writes text starting at (col, row) and returns the column after the
// last cell written. Text past the right edge is dropped. Tabs advance to
// the next multiple of tabWidth.
func (g *grid) put(col, row int, text string, style *gridview.Style, tabWidth int) int {
	state := -1
	for text != "" && col < g.cols {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)

		if cluster == "\t" {
			stop := min((col/tabWidth+1)*tabWidth, g.cols)
			for ; col < stop; col++ {
				g.set(col, row, cell{text: blank, style: style})
			}
			continue
		}
		if strings.ContainsAny(cluster, "\r\n") {
			continue
		}

		width := min(max(runewidth.StringWidth(cluster), 1), 2)
		if col+width > g.cols {
			break
		}
		g.set(col, row, cell{text: cluster, style: style})
		if width == 2 {
			g.set(col+1, row, cell{style: style, cont: true})
		}
		col += width
	}
	return col
}

// set replaces one cell, blanking the other half of any wide cluster it
// breaks.
func (g *grid) set(col, row int, c cell) {
	old := g.at(col, row)
	if old.cont && col > 0 && !c.cont {
		head := g.at(col-1, row)
		*head = cell{text: blank, style: head.style}
	}
	if !old.cont && col+1 < g.cols {
		if next := g.at(col+1, row); next.cont {
			*next = cell{text: blank, style: next.style}
		}
	}
	*old = c
}

// commands coalesces each row into runs of cells sharing a style.
func (g *grid) commands() []gridview.DrawCommand {
	var out []gridview.DrawCommand
	var sb strings.Builder
	for row := range g.rows {
		start := 0
		for start < g.cols {
			style := g.at(start, row).style
			end := start
			sb.Reset()
			for end < g.cols {
				c := g.at(end, row)
				if c.style != style {
					break
				}
				sb.WriteString(c.text)
				end++
			}
			out = append(out, gridview.DrawCommand{
				Col:   start,
				Row:   row,
				Width: end - start,
				Text:  sb.String(),
				Style: style,
			})
			start = end
		}
	}
	return out
}

// info returns the window description for a frame.
func (g *grid) info() gridview.WindowRenderInfo {
	return gridview.WindowRenderInfo{
		GridID:       g.id,
		Position:     g.position,
		Width:        g.cols,
		Height:       g.rows,
		ShouldClear:  g.clear,
		DrawCommands: g.commands(),
	}
}
