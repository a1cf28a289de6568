package pulseicon

// finalize clips the composed stack to the icon shape and adds the inner
// border, itself clipped by the same mask.
func finalize(composed *Canvas, cfg Config) *Canvas {
	radius := float64(cfg.CornerRadius())
	mask := NewRoundedRectMask(cfg.Size, radius)

	out := mask.Clip(composed)

	border := NewCanvas(cfg.Size, cfg.Size)
	inset := float64(cfg.Border.Inset)
	far := float64(cfg.Size-1) - inset
	NewPainter(border).StrokeRoundedRect(inset, inset, far, far, radius, cfg.Border.Width, cfg.Border.Color)
	out.Composite(mask.Clip(border))

	return out
}
