package filter

import (
	"image"
)

// Blur applies a separable Gaussian blur to premultiplied RGBA images.
// The two-pass algorithm runs in O(w*h*r) instead of O(w*h*r²).
type Blur struct {
	// Radius is the standard deviation of the kernel in pixels.
	Radius float64
}

// NewBlur creates a blur filter with the given radius.
func NewBlur(radius float64) *Blur {
	return &Blur{Radius: radius}
}

// ExpandBounds returns the region the blur can write to when every
// non-transparent source pixel lies inside input.
func (f *Blur) ExpandBounds(input image.Rectangle) image.Rectangle {
	return input.Inset(-KernelHalfSize(f.Radius))
}

// Apply blurs src into dst over the given region.
//
// Every product is rounded to float32 before it is accumulated, which
// keeps the compiler from fusing multiply and add. Results are therefore
// the same on architectures with and without FMA.
//
// Pixels outside region must be fully transparent in src; they are
// treated as zero, and the image edges are extended by clamping. src and
// dst may be the same image. Both must share bounds.
func (f *Blur) Apply(src, dst *image.RGBA, region image.Rectangle) {
	if src == nil || dst == nil {
		return
	}
	if src.Bounds() != dst.Bounds() {
		panic("filter: blur source and destination bounds differ")
	}

	region = region.Intersect(src.Bounds())
	if region.Empty() {
		return
	}
	if f.Radius <= 0 {
		if src != dst {
			copyRegion(src, dst, region)
		}
		return
	}

	kernel := GaussianKernel(f.Radius)
	width, height := region.Dx(), region.Dy()
	temp := make([]float32, width*height*4)

	blurHorizontal(src, temp, region, kernel)
	blurVertical(temp, dst, region, kernel)
}

// blurHorizontal convolves each row of region into temp.
func blurHorizontal(src *image.RGBA, temp []float32, region image.Rectangle, kernel []float32) {
	halfKernel := len(kernel) / 2
	b := src.Bounds()
	width := region.Dx()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := region.Min.X; x < region.Max.X; x++ {
			var r, g, bl, a float32

			for k, weight := range kernel {
				kx := clampInt(x+k-halfKernel, b.Min.X, b.Max.X-1) - b.Min.X
				i := kx * 4
				r += float32(float32(row[i+0]) * weight)
				g += float32(float32(row[i+1]) * weight)
				bl += float32(float32(row[i+2]) * weight)
				a += float32(float32(row[i+3]) * weight)
			}

			ti := ((y-region.Min.Y)*width + (x - region.Min.X)) * 4
			temp[ti+0] = r
			temp[ti+1] = g
			temp[ti+2] = bl
			temp[ti+3] = a
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float32, dst *image.RGBA, region image.Rectangle, kernel []float32) {
	halfKernel := len(kernel) / 2
	b := dst.Bounds()
	width := region.Dx()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			var r, g, bl, a float32

			for k, weight := range kernel {
				ky := clampInt(y+k-halfKernel, b.Min.Y, b.Max.Y-1)
				if ky < region.Min.Y || ky >= region.Max.Y {
					continue
				}
				ti := ((ky-region.Min.Y)*width + (x - region.Min.X)) * 4
				r += float32(temp[ti+0] * weight)
				g += float32(temp[ti+1] * weight)
				bl += float32(temp[ti+2] * weight)
				a += float32(temp[ti+3] * weight)
			}

			ca := clampUint8(a)
			di := dst.PixOffset(x, y)
			dst.Pix[di+0] = min(clampUint8(r), ca)
			dst.Pix[di+1] = min(clampUint8(g), ca)
			dst.Pix[di+2] = min(clampUint8(bl), ca)
			dst.Pix[di+3] = ca
		}
	}
}

// copyRegion copies pixels from src to dst within region.
func copyRegion(src, dst *image.RGBA, region image.Rectangle) {
	for y := region.Min.Y; y < region.Max.Y; y++ {
		si := src.PixOffset(region.Min.X, y)
		di := dst.PixOffset(region.Min.X, y)
		n := region.Dx() * 4
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 rounds and clamps a float to the byte range.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
