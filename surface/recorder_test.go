// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"slices"
	"testing"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder(40, 30)
	if r.Width() != 40 || r.Height() != 30 {
		t.Fatalf("size = %dx%d", r.Width(), r.Height())
	}

	r.Clear(black)
	r.Save()
	r.ClipRect(RectXYWH(0, 0, 10, 10))
	r.FillRect(RectXYWH(1, 2, 3, 4), red)
	r.DrawLine(Pt(0, 9), Pt(10, 9), LineStyle{Color: green, Width: 2, Dash: []float64{4, 4}})
	r.Restore()
	r.SetTransform(ScaleTransform(2))
	r.DrawSurface(NewRecorder(1, 1), Pt(3, 4))
	r.CopySurface(NewRecorder(1, 1), Pt(5, 6))

	want := []Op{OpClear, OpSave, OpClipRect, OpFillRect, OpDrawLine, OpRestore, OpSetTransform, OpDrawSurface, OpCopySurface}
	if got := r.Ops(); !slices.Equal(got, want) {
		t.Fatalf("Ops() = %v, want %v", got, want)
	}

	cmds := r.Commands()
	if cmds[3].Rect != RectXYWH(1, 2, 3, 4) || cmds[3].Color != red {
		t.Errorf("FillRect recorded %+v", cmds[3])
	}
	if !cmds[4].Line.IsDashed() || cmds[4].Color != green {
		t.Errorf("DrawLine recorded %+v", cmds[4])
	}
	if cmds[7].From != Pt(3, 4) {
		t.Errorf("DrawSurface at %v", cmds[7].From)
	}
	if cmds[8].From != Pt(5, 6) || cmds[8].Source == nil {
		t.Errorf("CopySurface recorded %+v", cmds[8])
	}
	if r.Depth() != 0 {
		t.Errorf("Depth() = %d", r.Depth())
	}
	if r.Snapshot() != nil {
		t.Error("Recorder should not produce pixels")
	}

	r.Reset()
	if len(r.Commands()) != 0 {
		t.Error("Reset should drop recorded commands")
	}
	_ = r.Close()
	if !r.Closed() {
		t.Error("Closed() should report Close")
	}
}

func TestOpString(t *testing.T) {
	if OpDrawGlyphRun.String() != "DrawGlyphRun" {
		t.Errorf("got %q", OpDrawGlyphRun.String())
	}
	if Op(200).String() != "Unknown" {
		t.Errorf("got %q", Op(200).String())
	}
}

func TestRect(t *testing.T) {
	r := RectXYWH(2, 4, 6, 8)
	if r.Width() != 6 || r.Height() != 8 || r.CenterY() != 8 {
		t.Errorf("r = %+v", r)
	}
	if r.Empty() || !(Rect{}).Empty() {
		t.Error("Empty mismatch")
	}
	if !r.Contains(Pt(2, 4)) || r.Contains(Pt(8, 4)) {
		t.Error("Contains should include the top-left edge and exclude the right edge")
	}
}
