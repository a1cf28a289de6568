package pulseicon

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// segment is one edge of a contour: a line when cubic is false.
type segment struct {
	cubic  bool
	c1, c2 Point
	to     Point
}

// contour is a closed sub-path.
type contour struct {
	start Point
	segs  []segment
}

// Path is a set of closed contours in canvas space.
//
// Every shape constructor emits its contour clockwise on screen (y down),
// so overlapping shapes reinforce each other. Reversed contours cut holes,
// which is how outlines are built.
type Path struct {
	contours []contour
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.contours = append(p.contours, contour{start: Pt(x, y)})
}

// LineTo adds a line to the current contour.
func (p *Path) LineTo(x, y float64) {
	p.add(segment{to: Pt(x, y)})
}

// CubicTo adds a cubic Bezier curve to the current contour.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.add(segment{cubic: true, c1: Pt(c1x, c1y), c2: Pt(c2x, c2y), to: Pt(x, y)})
}

func (p *Path) add(s segment) {
	if len(p.contours) == 0 {
		p.MoveTo(0, 0)
	}
	c := &p.contours[len(p.contours)-1]
	c.segs = append(c.segs, s)
}

// Len returns the number of contours.
func (p *Path) Len() int {
	return len(p.contours)
}

// Empty reports whether the path holds no contours.
func (p *Path) Empty() bool {
	return len(p.contours) == 0
}

// Clear removes all contours.
func (p *Path) Clear() {
	p.contours = p.contours[:0]
}

// Rectangle adds an axis-aligned rectangle.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
}

// Ellipse adds an ellipse centered on (cx, cy).
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
}

// Circle adds a circle centered on (cx, cy).
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// RoundedRectangle adds a rectangle with quarter-circle corners.
// The radius is clamped to half of the smaller side.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	k := r * kappa

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
}

// Segment adds the quadrilateral covered by a straight stroke of the given
// width from a to b. Zero-length segments add nothing.
func (p *Path) Segment(a, b Point, width float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || width <= 0 {
		return
	}
	n := d.Perp().Mul(width / 2 / l)

	p.MoveTo(a.X-n.X, a.Y-n.Y)
	p.LineTo(b.X-n.X, b.Y-n.Y)
	p.LineTo(b.X+n.X, b.Y+n.Y)
	p.LineTo(a.X+n.X, a.Y+n.Y)
}

// AppendReversed appends the contours of q with their direction flipped.
func (p *Path) AppendReversed(q *Path) {
	for _, c := range q.contours {
		p.contours = append(p.contours, c.reversed())
	}
}

func (c contour) reversed() contour {
	if len(c.segs) == 0 {
		return c
	}
	// Vertex i is where segment i starts; the last segment ends at the
	// closing point, which is the start again for closed shapes.
	from := make([]Point, len(c.segs))
	from[0] = c.start
	for i := 1; i < len(c.segs); i++ {
		from[i] = c.segs[i-1].to
	}

	r := contour{start: c.segs[len(c.segs)-1].to, segs: make([]segment, 0, len(c.segs))}
	for i := len(c.segs) - 1; i >= 0; i-- {
		s := c.segs[i]
		r.segs = append(r.segs, segment{cubic: s.cubic, c1: s.c2, c2: s.c1, to: from[i]})
	}
	return r
}

// Bounds returns the smallest integer rectangle containing every point and
// control point of the path. Bezier curves lie inside their control hull, so
// the rectangle covers everything the path can paint.
func (p *Path) Bounds() image.Rectangle {
	if p.Empty() {
		return image.Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(q Point) {
		minX, minY = math.Min(minX, q.X), math.Min(minY, q.Y)
		maxX, maxY = math.Max(maxX, q.X), math.Max(maxY, q.Y)
	}
	for _, c := range p.contours {
		grow(c.start)
		for _, s := range c.segs {
			if s.cubic {
				grow(s.c1)
				grow(s.c2)
			}
			grow(s.to)
		}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// rasterize feeds the path into z, shifted by -origin.
func (p *Path) rasterize(z *vector.Rasterizer, origin image.Point) {
	ox, oy := float64(origin.X), float64(origin.Y)
	pt := func(q Point) (float32, float32) {
		return float32(q.X - ox), float32(q.Y - oy)
	}
	for _, c := range p.contours {
		if len(c.segs) == 0 {
			continue
		}
		z.MoveTo(pt(c.start))
		for _, s := range c.segs {
			x, y := pt(s.to)
			if s.cubic {
				c1x, c1y := pt(s.c1)
				c2x, c2y := pt(s.c2)
				z.CubeTo(c1x, c1y, c2x, c2y, x, y)
				continue
			}
			z.LineTo(x, y)
		}
		z.ClosePath()
	}
}
