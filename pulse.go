package pulseicon

import (
	"image"
	"image/color"
	"math"

	"github.com/serverpulse/pulseicon/internal/blend"
	"github.com/serverpulse/pulseicon/internal/filter"
)

// glowPeakAlpha is the opacity of the innermost glow stroke before blurring.
const glowPeakAlpha = 50

// drawGlowLine draws pts onto base as a blurred halo with a crisp stroke
// on top.
//
// The halo is a stack of strokes from glowRadius wide down to 2 pixels,
// each narrower one more opaque, blurred with a Gaussian of the same
// radius and composited before the sharp line.
func drawGlowLine(base *Canvas, pts []Point, c color.NRGBA, width float64, glowRadius int) {
	if len(pts) < 2 {
		return
	}

	glow := NewCanvas(base.Width(), base.Height())
	gp := NewPainter(glow)
	for w := glowRadius; w > 0; w -= 2 {
		alpha := int(glowPeakAlpha * (1 - float64(w)/float64(glowRadius)))
		gp.Polyline(pts, float64(w), WithAlpha(c, uint8(alpha)))
	}

	blur := filter.NewBlur(float64(glowRadius))
	region := blur.ExpandBounds(pointBounds(pts, float64(glowRadius)))
	blur.Apply(glow.img, glow.img, region)
	base.Composite(glow)

	line := NewPainter(base)
	line.Mode = blend.ModeSourceOver
	line.Polyline(pts, width, c)
}

// drawEndpoint draws a glowing marker: fading rings, a solid disc and a
// brightened core.
func drawEndpoint(p *Painter, at Point, c color.NRGBA, radius int) {
	const ringSpan = 10
	for r := radius + ringSpan; r > radius; r-- {
		alpha := int(80 * (1 - float64(r-radius)/ringSpan))
		p.FillCircle(at.X, at.Y, float64(r), WithAlpha(c, uint8(alpha)))
	}
	p.FillCircle(at.X, at.Y, float64(radius), c)
	p.FillCircle(at.X, at.Y, float64(radius/2), Brighten(c, 80))
}

// pointBounds returns the integer rectangle around pts grown by pad.
func pointBounds(pts []Point, pad float64) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, q := range pts[1:] {
		minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
		minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
	}
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad))+1, int(math.Ceil(maxY+pad))+1,
	)
}
