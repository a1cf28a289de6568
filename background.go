package pulseicon

import "image/color"

// ColorAt returns the gradient color of row y on a canvas of the given
// height: the linear interpolation between Top and Bottom at y/height.
func (g Gradient) ColorAt(y, height int) color.NRGBA {
	c := Lerp(g.Top, g.Bottom, float64(y)/float64(height))
	c.A = 255
	return c
}

// Paint fills dst row by row with the gradient, replacing its content.
func (g Gradient) Paint(dst *Canvas) {
	h := dst.Height()
	for y := 0; y < h; y++ {
		dst.FillRow(y, g.ColorAt(y, h))
	}
}
