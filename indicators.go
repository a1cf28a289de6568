package pulseicon

const (
	indicatorRadius   = 8
	indicatorGlowSpan = 8
)

// drawIndicators draws each status dot with a soft halo of nested rings
// whose opacity falls off toward the outside.
func drawIndicators(p *Painter, dots []Indicator) {
	for _, d := range dots {
		x, y := float64(d.X), float64(d.Y)
		for gr := indicatorRadius + indicatorGlowSpan; gr > indicatorRadius; gr-- {
			alpha := int(float64(d.Color.A) * 0.3 * (1 - float64(gr-indicatorRadius)/indicatorGlowSpan))
			p.FillCircle(x, y, float64(gr), WithAlpha(d.Color, uint8(alpha)))
		}
		p.FillCircle(x, y, indicatorRadius, d.Color)
	}
}
