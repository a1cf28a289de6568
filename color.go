package pulseicon

import "image/color"

// Common colors used by the icon.
var (
	// Transparent is fully transparent black.
	Transparent = color.NRGBA{}
	// Black is opaque black.
	Black = color.NRGBA{A: 255}
	// White is opaque white.
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Lerp interpolates between two colors channel by channel.
// Each channel is a + (b-a)*t truncated toward zero, the same rounding a
// row-by-row gradient fill uses.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return clampByte(int(float64(a) + (float64(b)-float64(a))*t))
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Brighten adds delta to each color channel, saturating at 255, and
// returns an opaque color.
func Brighten(c color.NRGBA, delta int) color.NRGBA {
	return color.NRGBA{
		R: clampByte(int(c.R) + delta),
		G: clampByte(int(c.G) + delta),
		B: clampByte(int(c.B) + delta),
		A: 255,
	}
}

// clampByte clamps v to [0, 255].
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
