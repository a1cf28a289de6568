// Package filter provides raster filters applied to whole layers.
//
// The only filter the icon needs is a separable Gaussian blur used to
// soften the pulse glow. It works on premultiplied RGBA so that
// transparent pixels do not bleed dark fringes into the blurred color.
package filter
