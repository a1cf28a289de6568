package pulseicon

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Mask is a single-channel alpha raster used to clip canvases.
// Values range from 0 (clipped away) to 255 (kept).
type Mask struct {
	img *image.Alpha
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	return &Mask{img: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// NewRoundedRectMask creates a size×size mask that is 255 inside a
// rounded rectangle spanning the whole raster and 0 outside, with
// anti-aliased corners.
func NewRoundedRectMask(size int, radius float64) *Mask {
	m := NewMask(size, size)
	p := NewPath()
	p.RoundedRectangle(0, 0, float64(size), float64(size), radius)
	m.FillPath(p)
	return m
}

// FillPath sets the mask to the coverage of p, replacing previous values
// inside the covered area.
func (m *Mask) FillPath(p *Path) {
	b := m.img.Rect
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = xdraw.Src
	p.rasterize(z, b.Min)
	z.Draw(m.img, b, image.Opaque, image.Point{})
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return m.img.Rect
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.img.Rect.Dx() }

// Height returns the mask height.
func (m *Mask) Height() int { return m.img.Rect.Dy() }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(m.img.Rect)) {
		return 0
	}
	return m.img.AlphaAt(x, y).A
}

// Clip returns a new transparent canvas holding src multiplied by the mask.
// src must have the same dimensions as the mask.
func (m *Mask) Clip(src *Canvas) *Canvas {
	mustMatch(m.img.Rect, src.img.Rect)
	out := NewCanvas(src.Width(), src.Height())
	xdraw.DrawMask(out.img, out.img.Rect, src.img, src.img.Rect.Min, m.img, m.img.Rect.Min, xdraw.Src)
	return out
}
