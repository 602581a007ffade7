// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridview

import (
	"time"

	"github.com/gogpu/gridview/surface"
)

// DrawCommand paints one run of cells in a window.
type DrawCommand struct {
	// Col and Row are the grid position of the first cell.
	Col, Row int

	// Width is the number of cells covered.
	Width int

	// Text is the content of the cells. Trailing whitespace is not drawn.
	Text string

	// Style is the run's appearance. nil means the frame's default colors
	// and no decorations.
	Style *Style
}

// GridPoint is a position in cells. Fractional values are allowed for
// floating windows.
type GridPoint struct {
	X, Y float64
}

// WindowRenderInfo describes one editor window for a frame.
type WindowRenderInfo struct {
	// GridID identifies the window across frames.
	GridID uint64

	// Position is the window's target position in cells.
	Position GridPoint

	// Width and Height are the window size in cells.
	Width, Height int

	// ShouldClear discards the cached surface and snaps the window to its
	// target position.
	ShouldClear bool

	// DrawCommands are painted in order, background pass first.
	DrawCommands []DrawCommand
}

// FrameRenderInfo is the window list of a frame.
type FrameRenderInfo struct {
	Windows         []WindowRenderInfo
	ClosedWindowIDs []uint64
}

// CursorShape is the drawn form of the cursor.
type CursorShape uint8

// Cursor shapes.
const (
	CursorBlock CursorShape = iota
	CursorVertical
	CursorHorizontal
)

// String returns the shape name.
func (s CursorShape) String() string {
	switch s {
	case CursorBlock:
		return "block"
	case CursorVertical:
		return "vertical"
	case CursorHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Cursor is the cursor state of a frame.
type Cursor struct {
	// Col and Row are the cursor cell in root grid coordinates.
	Col, Row int

	Shape CursorShape

	// CellPercentage is the fraction of the cell covered by vertical and
	// horizontal cursors, in (0, 1]. Zero means the shape's default.
	CellPercentage float64

	Enabled bool

	// BlinkWait, BlinkOn and BlinkOff drive blinking. A zero value in any
	// of them disables blinking.
	BlinkWait, BlinkOn, BlinkOff time.Duration

	// Style colors the cursor. nil uses the inverted default colors.
	Style *Style

	// Character is the text under the cursor, redrawn by block cursors.
	Character string
}

// Frame is an immutable snapshot of editor state for one frame.
type Frame struct {
	Info         FrameRenderInfo
	DefaultStyle *Style
	Cursor       Cursor

	// FontSetting overrides the font when non-empty.
	FontSetting string
}

// DefaultColors returns the default style's colors.
func (f *Frame) DefaultColors() Colors {
	if f.DefaultStyle == nil {
		return Colors{}
	}
	return f.DefaultStyle.Colors
}

// WindowRegion is the on-screen area of a window in the last frame.
type WindowRegion struct {
	GridID uint64
	Rect   surface.Rect
}
