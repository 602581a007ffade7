// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/gridview/shaping"
)

// ErrInvalidDimensions is returned for negative surface sizes.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// ImageSurface is a Surface that renders through a gg.Context.
//
// Clipping is enforced by the surface itself: primitives that cross the
// clip are drawn into a scratch context and composited back. Clip rectangles
// are snapped to whole device pixels.
//
// A surface with zero width or height is valid; drawing on it does nothing.
type ImageSurface struct {
	width, height int
	dc            *gg.Context
	scratch       *gg.Context

	state state
	stack []state

	err    error
	closed bool
}

// state is the part of the drawing state saved by Save.
type state struct {
	transform Transform
	clip      image.Rectangle
	clipped   bool
}

// NewImageSurface creates a surface of the given size, cleared to
// transparent.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	s := &ImageSurface{
		width:  width,
		height: height,
		state:  state{transform: Identity()},
	}
	if width > 0 && height > 0 {
		s.dc = gg.NewContext(width, height)
	}
	return s, nil
}

// Width implements Surface.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height implements Surface.
func (s *ImageSurface) Height() int {
	return s.height
}

// Context returns the underlying gg context, or nil for a zero-size surface.
func (s *ImageSurface) Context() *gg.Context {
	return s.dc
}

// Err returns the first rendering error reported by gg, if any.
func (s *ImageSurface) Err() error {
	return s.err
}

func (s *ImageSurface) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *ImageSurface) usable() bool {
	return s.dc != nil && !s.closed
}

// Clear implements Surface.
func (s *ImageSurface) Clear(c gg.RGBA) {
	if !s.usable() {
		return
	}
	s.record(s.dc.FlushGPU())
	s.dc.ClearWithColor(c)
}

// FillRect implements Surface.
func (s *ImageSurface) FillRect(r Rect, c gg.RGBA) {
	if !s.usable() || r.Empty() {
		return
	}

	// Scale and translate keep rectangles axis aligned, so the clip is an
	// exact intersection in device space.
	d := s.toDevice(r)
	if s.state.clipped {
		d = intersect(d, s.state.clip)
		if d.Empty() {
			return
		}
	}

	s.dc.Push()
	s.dc.Identity()
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawRectangle(d.Left, d.Top, d.Width(), d.Height())
	s.record(s.dc.Fill())
	s.dc.Pop()
}

// DrawLine implements Surface.
func (s *ImageSurface) DrawLine(from, to Point, style LineStyle) {
	if !s.usable() {
		return
	}
	width := style.Width
	if width <= 0 {
		width = 1
	}
	half := width / 2
	bounds := Rect{
		Left:   math.Min(from.X, to.X) - half,
		Top:    math.Min(from.Y, to.Y) - half,
		Right:  math.Max(from.X, to.X) + half,
		Bottom: math.Max(from.Y, to.Y) + half,
	}

	s.paint(bounds, func(dc *gg.Context) error {
		dc.SetRGBA(style.Color.R, style.Color.G, style.Color.B, style.Color.A)
		dc.SetLineWidth(width)
		if style.IsDashed() {
			dc.SetDash(style.Dash...)
		} else {
			dc.ClearDash()
		}
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
		err := dc.Stroke()
		dc.ClearDash()
		return err
	})
}

// DrawGlyphRun implements Surface.
func (s *ImageSurface) DrawGlyphRun(run shaping.GlyphRun, origin Point, c gg.RGBA) {
	if !s.usable() || run.Font == nil || len(run.Glyphs) == 0 {
		return
	}

	outlines := make([]*text.GlyphOutline, len(run.Glyphs))
	bounds := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	for i, g := range run.Glyphs {
		o, err := run.Font.Outline(g.ID, run.Size)
		if err != nil {
			s.record(err)
			continue
		}
		if o.IsEmpty() {
			continue
		}
		outlines[i] = o
		x, y := origin.X+g.X, origin.Y+g.Y
		bounds.Left = math.Min(bounds.Left, x+o.Bounds.MinX)
		bounds.Top = math.Min(bounds.Top, y+o.Bounds.MinY)
		bounds.Right = math.Max(bounds.Right, x+o.Bounds.MaxX)
		bounds.Bottom = math.Max(bounds.Bottom, y+o.Bounds.MaxY)
	}
	if bounds.Empty() {
		return
	}

	s.paint(bounds, func(dc *gg.Context) error {
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.SetFillRule(gg.FillRuleNonZero)
		for i, o := range outlines {
			if o == nil {
				continue
			}
			g := run.Glyphs[i]
			appendOutline(dc, o, origin.X+g.X, origin.Y+g.Y)
		}
		return dc.Fill()
	})
}

// appendOutline adds the contours of o, placed at (x, y), to dc's path.
func appendOutline(dc *gg.Context, o *text.GlyphOutline, x, y float64) {
	pt := func(p text.OutlinePoint) (float64, float64) {
		return x + float64(p.X), y + float64(p.Y)
	}
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				dc.ClosePath()
			}
			dc.MoveTo(pt(seg.Points[0]))
			open = true
		case text.OutlineOpLineTo:
			dc.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			px, py := pt(seg.Points[1])
			dc.QuadraticTo(cx, cy, px, py)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			px, py := pt(seg.Points[2])
			dc.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if open {
		dc.ClosePath()
	}
}

// DrawSurface implements Surface.
func (s *ImageSurface) DrawSurface(src Surface, at Point) {
	if !s.usable() || src == nil {
		return
	}
	img := src.Snapshot()
	if img == nil {
		return
	}
	buf := gg.ImageBufFromImage(img)
	b := img.Bounds()
	bounds := RectXYWH(at.X, at.Y, float64(b.Dx()), float64(b.Dy()))

	s.paint(bounds, func(dc *gg.Context) error {
		dc.DrawImageEx(buf, gg.DrawImageOptions{
			X:             at.X,
			Y:             at.Y,
			Interpolation: gg.InterpNearest,
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
		return nil
	})
}

// CopySurface implements Surface.
func (s *ImageSurface) CopySurface(src Surface, at Point) {
	if !s.usable() || src == nil {
		return
	}
	img := src.Snapshot()
	if img == nil {
		return
	}

	t := s.state.transform
	x := int(math.Round(at.X*t.ScaleX + t.TranslateX))
	y := int(math.Round(at.Y*t.ScaleY + t.TranslateY))
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy()).Intersect(image.Rect(0, 0, s.width, s.height))
	if s.state.clipped {
		dst = dst.Intersect(s.state.clip)
	}
	if dst.Empty() {
		return
	}

	// The pixmap holds the same bytes Snapshot hands out, so rows copy
	// straight across.
	s.record(s.dc.FlushGPU())
	pix := s.dc.ResizeTarget().Data()
	n := dst.Dx() * 4
	for row := dst.Min.Y; row < dst.Max.Y; row++ {
		from := img.PixOffset(b.Min.X+dst.Min.X-x, b.Min.Y+row-y)
		to := (row*s.width + dst.Min.X) * 4
		copy(pix[to:to+n], img.Pix[from:from+n])
	}
}

// paint runs draw with the current transform. When the clip cuts through
// bounds (logical coordinates) the drawing goes through the scratch
// context and only the clipped part is composited.
func (s *ImageSurface) paint(bounds Rect, draw func(dc *gg.Context) error) {
	d := s.toDevice(bounds)
	if !s.state.clipped || contains(s.state.clip, d) {
		s.record(s.dc.FlushGPU())
		s.dc.Push()
		s.dc.SetTransform(s.matrix(0, 0))
		s.record(draw(s.dc))
		s.dc.Pop()
		return
	}

	clip := s.state.clip.Intersect(outer(d))
	if clip.Empty() {
		return
	}

	w, h := clip.Dx(), clip.Dy()
	if s.scratch == nil || s.scratch.Width() < w || s.scratch.Height() < h {
		if s.scratch != nil {
			s.record(s.scratch.Close())
		}
		s.scratch = gg.NewContext(max(w, s.width), max(h, s.height))
	}
	sc := s.scratch
	sc.Clear()
	sc.Identity()
	sc.SetTransform(s.matrix(float64(clip.Min.X), float64(clip.Min.Y)))
	s.record(draw(sc))
	s.record(sc.FlushGPU())

	layer, ok := sc.Image().(*image.RGBA)
	if !ok {
		return
	}
	src := gg.ImageBufFromImage(layer.SubImage(image.Rect(0, 0, w, h)))

	s.record(s.dc.FlushGPU())
	s.dc.Push()
	s.dc.Identity()
	s.dc.DrawImageEx(src, gg.DrawImageOptions{
		X:             float64(clip.Min.X),
		Y:             float64(clip.Min.Y),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	s.dc.Pop()
}

// matrix returns the current transform shifted so that device point
// (dx, dy) maps to the origin.
func (s *ImageSurface) matrix(dx, dy float64) gg.Matrix {
	t := s.state.transform
	return gg.Matrix{
		A: t.ScaleX, C: t.TranslateX - dx,
		E: t.ScaleY, F: t.TranslateY - dy,
	}
}

func (s *ImageSurface) toDevice(r Rect) Rect {
	t := s.state.transform
	x0, x1 := r.Left*t.ScaleX+t.TranslateX, r.Right*t.ScaleX+t.TranslateX
	y0, y1 := r.Top*t.ScaleY+t.TranslateY, r.Bottom*t.ScaleY+t.TranslateY
	return Rect{
		Left:   math.Min(x0, x1),
		Top:    math.Min(y0, y1),
		Right:  math.Max(x0, x1),
		Bottom: math.Max(y0, y1),
	}
}

// Save implements Surface.
func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore implements Surface.
func (s *ImageSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Depth returns the number of unmatched Save calls.
func (s *ImageSurface) Depth() int {
	return len(s.stack)
}

// ClipRect implements Surface.
func (s *ImageSurface) ClipRect(r Rect) {
	c := snap(s.toDevice(r))
	if s.state.clipped {
		c = s.state.clip.Intersect(c)
	}
	s.state.clip = c
	s.state.clipped = true
}

// SetTransform implements Surface.
func (s *ImageSurface) SetTransform(t Transform) {
	s.state.transform = t
}

// Snapshot implements Surface.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if !s.usable() {
		return nil
	}
	s.record(s.dc.FlushGPU())
	img, _ := s.dc.Image().(*image.RGBA)
	return img
}

// Close implements Surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.scratch != nil {
		err = s.scratch.Close()
		s.scratch = nil
	}
	if s.dc != nil {
		err = errors.Join(err, s.dc.Close())
	}
	return err
}

func intersect(a Rect, b image.Rectangle) Rect {
	return Rect{
		Left:   math.Max(a.Left, float64(b.Min.X)),
		Top:    math.Max(a.Top, float64(b.Min.Y)),
		Right:  math.Min(a.Right, float64(b.Max.X)),
		Bottom: math.Min(a.Bottom, float64(b.Max.Y)),
	}
}

func contains(c image.Rectangle, r Rect) bool {
	return r.Left >= float64(c.Min.X) && r.Top >= float64(c.Min.Y) &&
		r.Right <= float64(c.Max.X) && r.Bottom <= float64(c.Max.Y)
}

// snap rounds r to the nearest pixel edges.
func snap(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

// outer returns the smallest pixel rectangle covering r, with one pixel of
// slack for anti-aliasing.
func outer(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left))-1, int(math.Floor(r.Top))-1,
		int(math.Ceil(r.Right))+1, int(math.Ceil(r.Bottom))+1,
	)
}
