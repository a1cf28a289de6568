package pulseicon

// drawRack draws the server rack silhouette: a rounded outline, unit
// dividers, and per-unit LED and drive bay glyphs.
func drawRack(p *Painter, s RackStyle) {
	x, y := float64(s.X), float64(s.Y)
	w, h := float64(s.W), float64(s.H)

	p.StrokeRoundedRect(x, y, x+w, y+h, float64(s.CornerRadius), float64(s.StrokeWidth), s.Color)

	if s.UnitHeight <= 0 {
		return
	}

	for i := 1; i < 6; i++ {
		uy := s.Y + i*s.UnitHeight
		if uy >= s.Y+s.H-10 {
			continue
		}
		p.Line(Pt(x+15, float64(uy)), Pt(x+w-15, float64(uy)), 2, s.Color)
	}

	for i := 0; i < 6; i++ {
		uy := s.Y + 40 + i*s.UnitHeight
		if uy >= s.Y+s.H-30 {
			continue
		}
		cy := float64(uy)
		p.FillEllipse(x+30, cy-4, x+38, cy+4, s.LEDColor)
		for j := 0; j < 3; j++ {
			bx := x + w - 60 + float64(j*15)
			p.StrokeRect(bx, cy-6, bx+8, cy+6, 1, s.Color)
		}
	}
}
