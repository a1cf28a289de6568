// Package blend applies coverage masks to premultiplied RGBA buffers.
//
// The rasterizer produces per-pixel coverage; this package turns coverage
// plus a solid color into pixels using one of two Porter-Duff operators.
// All math is 8-bit premultiplied alpha so results are bit-reproducible.
package blend

import (
	"image"
	"image/color"
)

// Mode selects the operator used when a covered pixel meets the destination.
type Mode uint8

const (
	// ModeSource replaces destination pixels with the source color,
	// weighted by coverage. This is how a paint tool writes ink onto a
	// layer: later shapes overwrite earlier ones instead of stacking.
	ModeSource Mode = iota
	// ModeSourceOver alpha-blends the source over the destination.
	ModeSourceOver
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSource:
		return "source"
	case ModeSourceOver:
		return "source-over"
	default:
		return "unknown"
	}
}

// blendFunc is the signature shared by the per-pixel operators.
type blendFunc func(sr, sg, sb, sa, dr, dg, db, da, cov byte) (r, g, b, a byte)

func funcFor(mode Mode) blendFunc {
	if mode == ModeSource {
		return blendSource
	}
	return blendSourceOver
}

// Premultiply converts a straight-alpha color to premultiplied 8-bit form.
func Premultiply(c color.NRGBA) color.RGBA {
	return color.RGBA{
		R: mulDiv255(c.R, c.A),
		G: mulDiv255(c.G, c.A),
		B: mulDiv255(c.B, c.A),
		A: c.A,
	}
}

// FillMask paints src into dst wherever cov is non-zero.
//
// cov is placed with its bounds origin at at in dst coordinates. Pixels of
// cov falling outside dst are ignored.
func FillMask(dst *image.RGBA, at image.Point, cov *image.Alpha, src color.RGBA, mode Mode) {
	fn := funcFor(mode)
	cb := cov.Bounds()
	area := cb.Sub(cb.Min).Add(at).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		mi := cov.PixOffset(cb.Min.X+area.Min.X-at.X, cb.Min.Y+y-at.Y)
		di := dst.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x, mi, di = x+1, mi+1, di+4 {
			c := cov.Pix[mi]
			if c == 0 {
				continue
			}
			p := dst.Pix[di : di+4 : di+4]
			p[0], p[1], p[2], p[3] = fn(src.R, src.G, src.B, src.A, p[0], p[1], p[2], p[3], c)
		}
	}
}
