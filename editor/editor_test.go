// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package editor

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/surface"
)

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) QueueNextFrame() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func openWindow(t *testing.T, e *Editor, id uint64, cols, rows int) {
	t.Helper()
	if err := e.OpenWindow(id, 0, 0, cols, rows); err != nil {
		t.Fatalf("OpenWindow(%d) error = %v", id, err)
	}
}

func rowText(t *testing.T, e *Editor, id uint64, row int) string {
	t.Helper()
	for _, w := range e.Snapshot().Info.Windows {
		if w.GridID != id {
			continue
		}
		var s string
		for _, cmd := range w.DrawCommands {
			if cmd.Row == row {
				s += cmd.Text
			}
		}
		return s
	}
	t.Fatalf("window %d not in snapshot", id)
	return ""
}

func TestOpenWindowErrors(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 4, 2)

	tests := []struct {
		name       string
		id         uint64
		cols, rows int
		want       error
	}{
		{"duplicate", 1, 4, 2, ErrWindowExists},
		{"zero cols", 2, 0, 2, ErrInvalidSize},
		{"negative rows", 2, 4, -1, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := e.OpenWindow(tt.id, 0, 0, tt.cols, tt.rows); !errors.Is(err, tt.want) {
				t.Errorf("OpenWindow() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnknownWindow(t *testing.T) {
	e := New()
	ops := map[string]func() error{
		"move":   func() error { return e.MoveWindow(9, 1, 1) },
		"resize": func() error { return e.ResizeWindow(9, 1, 1) },
		"raise":  func() error { return e.RaiseWindow(9) },
		"close":  func() error { return e.CloseWindow(9) },
		"clear":  func() error { return e.ClearWindow(9) },
		"put": func() error {
			_, err := e.PutText(9, 0, 0, "x", nil)
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrUnknownWindow) {
				t.Errorf("error = %v, want ErrUnknownWindow", err)
			}
		})
	}
}

func TestPutTextCoalescesRuns(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 10, 2)
	bold := &gridview.Style{Bold: true}

	if _, err := e.PutText(1, 2, 0, "ab", bold); err != nil {
		t.Fatal(err)
	}
	if _, err := e.PutText(1, 4, 0, "cd", bold); err != nil {
		t.Fatal(err)
	}

	got := e.Snapshot().Info.Windows[0].DrawCommands
	want := []gridview.DrawCommand{
		{Col: 0, Row: 0, Width: 2, Text: "  "},
		{Col: 2, Row: 0, Width: 4, Text: "abcd", Style: bold},
		{Col: 6, Row: 0, Width: 4, Text: "    "},
		{Col: 0, Row: 1, Width: 10, Text: "          "},
	}
	if !slices.Equal(got, want) {
		t.Errorf("commands = %+v\nwant %+v", got, want)
	}
}

func TestPutText(t *testing.T) {
	tests := []struct {
		name    string
		col     int
		text    string
		wantEnd int
		wantRow string
	}{
		{"ascii", 0, "hello", 5, "hello   "},
		{"clipped", 5, "hello", 8, "     hel"},
		{"wide", 0, "日本", 4, "日本    "},
		{"wide at edge", 6, "a日", 7, "      a "},
		{"combining mark", 0, "éx", 2, "éx      "},
		{"tab", 0, "a\tb", 5, "a   b   "},
		{"newline dropped", 0, "a\nb", 2, "ab      "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithTabWidth(4))
			openWindow(t, e, 1, 8, 1)

			end, err := e.PutText(1, tt.col, 0, tt.text, nil)
			if err != nil {
				t.Fatal(err)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %d, want %d", end, tt.wantEnd)
			}
			if got := rowText(t, e, 1, 0); got != tt.wantRow {
				t.Errorf("row = %q, want %q", got, tt.wantRow)
			}
		})
	}
}

func TestPutTextBreaksWideCells(t *testing.T) {
	tests := []struct {
		name string
		col  int
		want string
	}{
		{"right half", 1, " x  "},
		{"left half", 0, "x   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			openWindow(t, e, 1, 4, 1)
			if _, err := e.PutText(1, 0, 0, "日", nil); err != nil {
				t.Fatal(err)
			}
			if _, err := e.PutText(1, tt.col, 0, "x", nil); err != nil {
				t.Fatal(err)
			}
			if got := rowText(t, e, 1, 0); got != tt.want {
				t.Errorf("row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPutTextOutOfRange(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 4, 2)
	for _, pos := range [][2]int{{-1, 0}, {4, 0}, {0, 2}, {0, -1}} {
		if _, err := e.PutText(1, pos[0], pos[1], "x", nil); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PutText at %v error = %v, want ErrOutOfRange", pos, err)
		}
	}
}

func TestSnapshotFlags(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 2, 1)
	openWindow(t, e, 2, 2, 1)

	first := e.Snapshot()
	for _, w := range first.Info.Windows {
		if !w.ShouldClear {
			t.Errorf("new window %d not marked for clearing", w.GridID)
		}
	}
	for _, w := range e.Snapshot().Info.Windows {
		if w.ShouldClear {
			t.Errorf("window %d still marked for clearing", w.GridID)
		}
	}

	if err := e.ClearWindow(1); err != nil {
		t.Fatal(err)
	}
	if err := e.CloseWindow(2); err != nil {
		t.Fatal(err)
	}
	f := e.Snapshot()
	if len(f.Info.Windows) != 1 || !f.Info.Windows[0].ShouldClear {
		t.Errorf("windows = %+v, want only window 1 marked for clearing", f.Info.Windows)
	}
	if !slices.Equal(f.Info.ClosedWindowIDs, []uint64{2}) {
		t.Errorf("closed = %v, want [2]", f.Info.ClosedWindowIDs)
	}
	if closed := e.Snapshot().Info.ClosedWindowIDs; len(closed) != 0 {
		t.Errorf("closed ids reported twice: %v", closed)
	}
}

func TestSnapshotState(t *testing.T) {
	e := New()
	style := &gridview.Style{Italic: true}
	cur := gridview.Cursor{Col: 3, Row: 1, Enabled: true}
	e.SetDefaultStyle(style)
	e.SetCursor(cur)
	e.SetFont("Go_Mono:h16")
	openWindow(t, e, 1, 2, 2)
	if err := e.MoveWindow(1, 1.5, 2); err != nil {
		t.Fatal(err)
	}

	f := e.Snapshot()
	if f.DefaultStyle != style || f.Cursor != cur || f.FontSetting != "Go_Mono:h16" {
		t.Errorf("frame = %+v", f)
	}
	if w := f.Info.Windows[0]; w.Position != (gridview.GridPoint{X: 1.5, Y: 2}) || w.Width != 2 || w.Height != 2 {
		t.Errorf("window = %+v", w)
	}
}

func TestResizeWindow(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 6, 2)
	if _, err := e.PutText(1, 0, 0, "ab日", nil); err != nil {
		t.Fatal(err)
	}

	if err := e.ResizeWindow(1, 3, 1); err != nil {
		t.Fatal(err)
	}
	if got := rowText(t, e, 1, 0); got != "ab " {
		t.Errorf("row after shrink = %q, want %q", got, "ab ")
	}

	if err := e.ResizeWindow(1, 5, 2); err != nil {
		t.Fatal(err)
	}
	if got := rowText(t, e, 1, 1); got != "     " {
		t.Errorf("new row = %q, want blank", got)
	}
	if err := e.ResizeWindow(1, 0, 2); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ResizeWindow(0) error = %v", err)
	}
}

func TestRaiseWindow(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 1, 1)
	openWindow(t, e, 2, 1, 1)
	openWindow(t, e, 3, 1, 1)

	if err := e.RaiseWindow(1); err != nil {
		t.Fatal(err)
	}
	if got := e.Windows(); !slices.Equal(got, []uint64{2, 3, 1}) {
		t.Errorf("Windows() = %v, want [2 3 1]", got)
	}
	var order []uint64
	for _, w := range e.Snapshot().Info.Windows {
		order = append(order, w.GridID)
	}
	if !slices.Equal(order, []uint64{2, 3, 1}) {
		t.Errorf("snapshot order = %v", order)
	}
}

func TestChangesRequestFrames(t *testing.T) {
	c := &counter{}
	e := New(WithScheduler(c))
	openWindow(t, e, 1, 4, 1)
	_, _ = e.PutText(1, 0, 0, "x", nil)
	_ = e.MoveWindow(1, 1, 1)
	e.SetCursor(gridview.Cursor{})
	_ = e.MoveWindow(7, 1, 1)

	if c.n != 4 {
		t.Errorf("frames requested = %d, want 4", c.n)
	}
}

func TestConcurrentSnapshot(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 20, 5)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 200 {
			_, _ = e.PutText(1, i%20, i%5, "x", nil)
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			f := e.Snapshot()
			if len(f.Info.Windows) != 1 {
				t.Error("window missing from snapshot")
				return
			}
		}
	}()
	wg.Wait()
}

func TestEditorDrivesRenderer(t *testing.T) {
	e := New()
	openWindow(t, e, 1, 10, 2)
	if _, err := e.PutText(1, 0, 0, "func main", &gridview.Style{Bold: true}); err != nil {
		t.Fatal(err)
	}

	allocate := func(w, h int) (surface.Surface, error) { return surface.NewRecorder(w, h), nil }
	r, err := gridview.NewRenderer(e, gridview.WithSurfaceAllocator(allocate))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := r.Draw(surface.NewRecorder(640, 480), gridview.CoordinateSystem{}, 0); err != nil {
		t.Fatal(err)
	}
	regions := r.WindowRegions()
	if len(regions) != 1 || regions[0].GridID != 1 {
		t.Fatalf("WindowRegions() = %+v", regions)
	}
	m := r.FontMetrics()
	if regions[0].Rect.Width() != float64(int(10*m.Width)) {
		t.Errorf("region width = %v, want %v", regions[0].Rect.Width(), float64(int(10*m.Width)))
	}
}
