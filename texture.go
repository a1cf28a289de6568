package pulseicon

import "math/rand/v2"

// drawGrid rules vertical and horizontal lines every Spacing pixels.
func drawGrid(p *Painter, size int, s GridStyle) {
	if s.Spacing <= 0 {
		return
	}
	// All lines share one color, so they are covered in a single pass.
	path := NewPath()
	for x := 0; x < size; x += s.Spacing {
		path.Segment(pixelCenter(Pt(float64(x), 0)), pixelCenter(Pt(float64(x), float64(size))), 1)
	}
	for y := 0; y < size; y += s.Spacing {
		path.Segment(pixelCenter(Pt(0, float64(y))), pixelCenter(Pt(float64(size), float64(y))), 1)
	}
	p.FillPath(path, s.LineColor)
}

// drawCircuitDots places a small node on interior grid intersections with
// probability DotProbability. Placement is a pure function of the seed.
func drawCircuitDots(p *Painter, size int, seed uint64, s GridStyle) {
	if s.Spacing <= 0 {
		return
	}
	rng := newDotSource(seed)
	r := float64(s.DotRadius)
	for x := s.Spacing; x < size; x += s.Spacing {
		for y := s.Spacing; y < size; y += s.Spacing {
			if rng.Float64() < s.DotProbability {
				p.FillCircle(float64(x), float64(y), r, s.DotColor)
			}
		}
	}
}

// dotSource yields uniform floats in [0, 1) from a PCG-DXSM stream.
//
// The float is derived from the top 53 bits of each 64-bit output here
// rather than through rand.Rand, so the sequence depends only on the PCG
// algorithm, which is fixed by its definition.
type dotSource struct {
	pcg *rand.PCG
}

func newDotSource(seed uint64) *dotSource {
	return &dotSource{pcg: rand.NewPCG(seed, 0)}
}

// Float64 returns the next value in [0, 1).
func (s *dotSource) Float64() float64 {
	return float64(s.pcg.Uint64()>>11) / (1 << 53)
}

// drawTexture draws the grid and circuit dots onto one layer.
func drawTexture(p *Painter, cfg Config) {
	drawGrid(p, cfg.Size, cfg.Grid)
	drawCircuitDots(p, cfg.Size, cfg.Seed, cfg.Grid)
}
