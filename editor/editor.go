// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/gridview"
)

// DefaultTabWidth is the tab stop interval in cells.
const DefaultTabWidth = 8

var (
	// ErrUnknownWindow is returned for operations on a window that is not
	// open.
	ErrUnknownWindow = errors.New("editor: unknown window")

	// ErrWindowExists is returned by OpenWindow for an id already in use.
	ErrWindowExists = errors.New("editor: window already open")

	// ErrInvalidSize is returned for window sizes below one cell.
	ErrInvalidSize = errors.New("editor: invalid window size")

	// ErrOutOfRange is returned by PutText outside the window.
	ErrOutOfRange = errors.New("editor: position out of range")
)

// Option configures an Editor.
type Option func(*Editor)

// WithTabWidth sets the tab stop interval. Values below one are ignored.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		if n >= 1 {
			e.tabWidth = n
		}
	}
}

// WithScheduler asks s for a frame after every change.
func WithScheduler(s gridview.Scheduler) Option {
	return func(e *Editor) {
		e.scheduler = s
	}
}

// WithLogger sets the editor's logger. By default gridview.Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// Editor is the editor state published to the renderer. It implements
// gridview.SnapshotSource.
type Editor struct {
	tabWidth  int
	scheduler gridview.Scheduler
	logger    *slog.Logger

	mu           sync.Mutex
	windows      map[uint64]*grid
	order        []uint64
	closed       []uint64
	defaultStyle *gridview.Style
	cursor       gridview.Cursor
	font         string
}

// New creates an empty editor.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabWidth: DefaultTabWidth,
		windows:  make(map[uint64]*grid),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return gridview.Logger()
}

// changed requests a frame. It must be called without e.mu held.
func (e *Editor) changed() {
	if e.scheduler != nil {
		e.scheduler.QueueNextFrame()
	}
}

func (e *Editor) window(id uint64) (*grid, error) {
	g, ok := e.windows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWindow, id)
	}
	return g, nil
}

// OpenWindow opens a blank window of cols x rows cells at (x, y) in cells.
// New windows are drawn above existing ones.
func (e *Editor) OpenWindow(id uint64, x, y float64, cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}

	e.mu.Lock()
	if _, ok := e.windows[id]; ok {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrWindowExists, id)
	}
	e.windows[id] = newGrid(id, gridview.GridPoint{X: x, Y: y}, cols, rows)
	e.order = append(e.order, id)
	e.mu.Unlock()

	e.log().Debug("editor: window opened", "grid", id, "cols", cols, "rows", rows)
	e.changed()
	return nil
}

// MoveWindow sets the target position of a window in cells. The renderer
// animates the window toward it.
func (e *Editor) MoveWindow(id uint64, x, y float64) error {
	e.mu.Lock()
	g, err := e.window(id)
	if err == nil {
		g.position = gridview.GridPoint{X: x, Y: y}
	}
	e.mu.Unlock()

	if err == nil {
		e.changed()
	}
	return err
}

// ResizeWindow changes the size of a window, keeping the content that
// still fits.
func (e *Editor) ResizeWindow(id uint64, cols, rows int) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}

	e.mu.Lock()
	g, err := e.window(id)
	if err == nil {
		g.resize(cols, rows)
	}
	e.mu.Unlock()

	if err == nil {
		e.changed()
	}
	return err
}

// RaiseWindow moves a window above all others.
func (e *Editor) RaiseWindow(id uint64) error {
	e.mu.Lock()
	_, err := e.window(id)
	if err == nil {
		i := slices.Index(e.order, id)
		e.order = append(slices.Delete(e.order, i, i+1), id)
	}
	e.mu.Unlock()

	if err == nil {
		e.changed()
	}
	return err
}

// CloseWindow closes a window. The next snapshot reports it as closed.
func (e *Editor) CloseWindow(id uint64) error {
	e.mu.Lock()
	_, err := e.window(id)
	if err == nil {
		delete(e.windows, id)
		e.order = slices.DeleteFunc(e.order, func(w uint64) bool { return w == id })
		e.closed = append(e.closed, id)
	}
	e.mu.Unlock()

	if err != nil {
		return err
	}
	e.log().Debug("editor: window closed", "grid", id)
	e.changed()
	return nil
}

// ClearWindow blanks a window. The renderer discards its cached surface
// and snaps it to its position.
func (e *Editor) ClearWindow(id uint64) error {
	e.mu.Lock()
	g, err := e.window(id)
	if err == nil {
		g.reset()
		g.clear = true
	}
	e.mu.Unlock()

	if err == nil {
		e.changed()
	}
	return err
}

// PutText writes text into a window starting at (col, row) and returns
// the column after the last cell written. Text is split into grapheme
// clusters; wide clusters take two cells. Text past the right edge is
// dropped and line breaks are ignored. A nil style means the default
// style.
func (e *Editor) PutText(id uint64, col, row int, text string, style *gridview.Style) (int, error) {
	e.mu.Lock()
	g, err := e.window(id)
	if err != nil {
		e.mu.Unlock()
		return 0, err
	}
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		e.mu.Unlock()
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d window %d", ErrOutOfRange, col, row, g.cols, g.rows, id)
	}
	end := g.put(col, row, text, style, e.tabWidth)
	e.mu.Unlock()

	e.changed()
	return end, nil
}

// SetDefaultStyle sets the style of cells without their own.
func (e *Editor) SetDefaultStyle(s *gridview.Style) {
	e.mu.Lock()
	e.defaultStyle = s
	e.mu.Unlock()
	e.changed()
}

// SetCursor sets the cursor state.
func (e *Editor) SetCursor(c gridview.Cursor) {
	e.mu.Lock()
	e.cursor = c
	e.mu.Unlock()
	e.changed()
}

// SetFont sets the font setting published with every frame, in the form
// accepted by shaping.ParseFontOptions.
func (e *Editor) SetFont(setting string) {
	e.mu.Lock()
	e.font = setting
	e.mu.Unlock()
	e.changed()
}

// Windows returns the ids of the open windows from bottom to top.
func (e *Editor) Windows() []uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.order)
}

// Snapshot implements gridview.SnapshotSource. It publishes the current
// state, hands over the windows closed since the last snapshot and clears
// every window's ShouldClear flag.
func (e *Editor) Snapshot() gridview.Frame {
	e.mu.Lock()
	defer e.mu.Unlock()

	frame := gridview.Frame{
		Info: gridview.FrameRenderInfo{
			Windows:         make([]gridview.WindowRenderInfo, 0, len(e.order)),
			ClosedWindowIDs: e.closed,
		},
		DefaultStyle: e.defaultStyle,
		Cursor:       e.cursor,
		FontSetting:  e.font,
	}
	for _, id := range e.order {
		g := e.windows[id]
		frame.Info.Windows = append(frame.Info.Windows, g.info())
		g.clear = false
	}
	e.closed = nil
	return frame
}
