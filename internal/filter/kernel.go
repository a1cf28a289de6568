package filter

import "math"

// GaussianKernel returns normalized 1D weights for a Gaussian whose
// standard deviation is radius. The kernel has 2*KernelHalfSize(radius)+1
// taps and is exactly symmetric. A non-positive radius gives the identity
// kernel [1].
func GaussianKernel(radius float64) []float32 {
	half := KernelHalfSize(radius)
	if half == 0 {
		return []float32{1}
	}

	// Weights for distances 0..half; the normalizing sum counts every
	// off-center tap twice.
	side := make([]float64, half+1)
	sum := 0.0
	for d := range side {
		side[d] = math.Exp(-float64(d*d) / (2 * radius * radius))
		if d == 0 {
			sum += side[d]
		} else {
			sum += 2 * side[d]
		}
	}

	kernel := make([]float32, 2*half+1)
	for d, w := range side {
		v := float32(w / sum)
		kernel[half-d] = v
		kernel[half+d] = v
	}
	return kernel
}

// KernelHalfSize returns how many pixels the kernel reaches on each side
// of its center: three standard deviations, rounded up.
func KernelHalfSize(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius * 3))
}
