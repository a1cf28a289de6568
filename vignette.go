package pulseicon

import "math"

// drawVignette strokes concentric black circle outlines from the canvas
// edge inward. Each ring's opacity grows with the square of its inset from
// the edge, capped at MaxAlpha.
func drawVignette(p *Painter, size int, s VignetteStyle) {
	if s.Step <= 0 {
		return
	}
	half := size / 2
	center := float64(half)
	for ring := 0; ring < half; ring += s.Step {
		ratio := float64(ring) / float64(half)
		alpha := min(int(s.Strength*math.Pow(ratio, 2)), s.MaxAlpha)
		r := float64(half - ring)
		p.StrokeEllipse(center-r, center-r, center+r, center+r, s.Width, WithAlpha(Black, clampByte(alpha)))
	}
}
