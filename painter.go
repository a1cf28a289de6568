package pulseicon

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/serverpulse/pulseicon/internal/blend"
)

// Painter draws anti-aliased shapes onto a Canvas.
//
// Box arguments (x0, y0, x1, y1) name inclusive pixel bounds: a box from
// (10, 10) to (12, 12) covers nine pixels. Line endpoints name pixel
// centers. Outlines grow inward from the box edge.
//
// By default a Painter writes ink the way a paint tool does: covered
// pixels are replaced by the shape color, so a later shape overwrites an
// earlier one on the same layer. Set Mode to blend.ModeSourceOver to
// alpha-blend instead.
type Painter struct {
	dst  *Canvas
	Mode blend.Mode

	ras  vector.Rasterizer
	cov  *image.Alpha
	path Path
}

// NewPainter creates a painter that draws onto dst.
func NewPainter(dst *Canvas) *Painter {
	return &Painter{dst: dst, Mode: blend.ModeSource, cov: &image.Alpha{}}
}

// FillPath fills p with a solid color.
func (p *Painter) FillPath(path *Path, c color.NRGBA) {
	if path.Empty() || c.A == 0 && p.Mode == blend.ModeSourceOver {
		return
	}
	area := path.Bounds().Intersect(p.dst.Bounds())
	if area.Empty() {
		return
	}

	w, h := area.Dx(), area.Dy()
	p.ras.Reset(w, h)
	p.ras.DrawOp = xdraw.Src
	path.rasterize(&p.ras, area.Min)

	cov := p.coverage(w, h)
	p.ras.Draw(cov, cov.Rect, image.Opaque, image.Point{})

	blend.FillMask(p.dst.img, area.Min, cov, blend.Premultiply(c), p.Mode)
}

// coverage returns a cleared w×h alpha buffer, reusing earlier storage.
func (p *Painter) coverage(w, h int) *image.Alpha {
	n := w * h
	if cap(p.cov.Pix) < n {
		p.cov.Pix = make([]uint8, n)
	}
	p.cov.Pix = p.cov.Pix[:n]
	clear(p.cov.Pix)
	p.cov.Stride = w
	p.cov.Rect = image.Rect(0, 0, w, h)
	return p.cov
}

// shape returns the painter's scratch path, emptied.
func (p *Painter) shape() *Path {
	p.path.Clear()
	return &p.path
}

// FillEllipse fills the ellipse inscribed in the box.
func (p *Painter) FillEllipse(x0, y0, x1, y1 float64, c color.NRGBA) {
	path := p.shape()
	ellipseInBox(path, x0, y0, x1, y1)
	p.FillPath(path, c)
}

// FillCircle fills the circle covering the box (cx-r, cy-r)-(cx+r, cy+r).
func (p *Painter) FillCircle(cx, cy, r float64, c color.NRGBA) {
	p.FillEllipse(cx-r, cy-r, cx+r, cy+r, c)
}

// StrokeEllipse draws the outline of the ellipse inscribed in the box.
func (p *Painter) StrokeEllipse(x0, y0, x1, y1, width float64, c color.NRGBA) {
	path := p.shape()
	ellipseInBox(path, x0, y0, x1, y1)
	if x1-x0+1 > 2*width && y1-y0+1 > 2*width {
		inner := NewPath()
		ellipseInBox(inner, x0+width, y0+width, x1-width, y1-width)
		path.AppendReversed(inner)
	}
	p.FillPath(path, c)
}

// FillRect fills the box.
func (p *Painter) FillRect(x0, y0, x1, y1 float64, c color.NRGBA) {
	path := p.shape()
	path.Rectangle(x0, y0, x1-x0+1, y1-y0+1)
	p.FillPath(path, c)
}

// StrokeRect draws the outline of the box.
func (p *Painter) StrokeRect(x0, y0, x1, y1, width float64, c color.NRGBA) {
	path := p.shape()
	path.Rectangle(x0, y0, x1-x0+1, y1-y0+1)
	if x1-x0+1 > 2*width && y1-y0+1 > 2*width {
		inner := NewPath()
		inner.Rectangle(x0+width, y0+width, x1-x0+1-2*width, y1-y0+1-2*width)
		path.AppendReversed(inner)
	}
	p.FillPath(path, c)
}

// StrokeRoundedRect draws the outline of the box with rounded corners.
// The inner edge of the outline has radius r-width.
func (p *Painter) StrokeRoundedRect(x0, y0, x1, y1, r, width float64, c color.NRGBA) {
	path := p.shape()
	path.RoundedRectangle(x0, y0, x1-x0+1, y1-y0+1, r)
	if x1-x0+1 > 2*width && y1-y0+1 > 2*width {
		inner := NewPath()
		inner.RoundedRectangle(x0+width, y0+width, x1-x0+1-2*width, y1-y0+1-2*width, r-width)
		path.AppendReversed(inner)
	}
	p.FillPath(path, c)
}

// Line strokes a straight line between two pixel centers.
func (p *Painter) Line(a, b Point, width float64, c color.NRGBA) {
	path := p.shape()
	path.Segment(pixelCenter(a), pixelCenter(b), width)
	p.FillPath(path, c)
}

// Polyline strokes consecutive points with round joins. All segments are
// covered in a single pass, so overlapping joints are not painted twice.
func (p *Painter) Polyline(pts []Point, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	path := p.shape()
	for i := 0; i+1 < len(pts); i++ {
		path.Segment(pixelCenter(pts[i]), pixelCenter(pts[i+1]), width)
	}
	for _, q := range pts[1 : len(pts)-1] {
		q = pixelCenter(q)
		path.Circle(q.X, q.Y, width/2)
	}
	p.FillPath(path, c)
}

// ellipseInBox adds the ellipse inscribed in an inclusive pixel box.
func ellipseInBox(path *Path, x0, y0, x1, y1 float64) {
	rx := (x1 - x0 + 1) / 2
	ry := (y1 - y0 + 1) / 2
	path.Ellipse(x0+rx, y0+ry, rx, ry)
}

// pixelCenter maps a pixel coordinate to the center of that pixel.
func pixelCenter(q Point) Point {
	return Pt(q.X+0.5, q.Y+0.5)
}
