package pulseicon

import (
	"image/color"
	"testing"

	"github.com/serverpulse/pulseicon/internal/blend"
)

func TestDotSourceDeterministic(t *testing.T) {
	a, b := newDotSource(42), newDotSource(42)
	for i := 0; i < 1000; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d: %v outside [0, 1)", i, x)
		}
	}
}

func TestDotSourceSeeds(t *testing.T) {
	a, b := newDotSource(42), newDotSource(43)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same > 1 {
		t.Errorf("seeds 42 and 43 agree on %d of 100 draws", same)
	}
}

func TestDotSourceRate(t *testing.T) {
	// About eight percent of draws fall under the default probability.
	s := newDotSource(42)
	hits := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if s.Float64() < 0.08 {
			hits++
		}
	}
	if hits < 650 || hits > 950 {
		t.Errorf("%d of %d draws below 0.08, want about 800", hits, n)
	}
}

func renderTexture(seed uint64) *Canvas {
	cfg := DefaultConfig()
	cfg.Size = 480
	cfg.Seed = seed
	c := NewCanvas(cfg.Size, cfg.Size)
	drawTexture(NewPainter(c), cfg)
	return c
}

func TestTextureDeterministic(t *testing.T) {
	if renderTexture(42).Digest() != renderTexture(42).Digest() {
		t.Error("equal seeds produced different textures")
	}
	if renderTexture(42).Digest() == renderTexture(1).Digest() {
		t.Error("different seeds produced identical textures")
	}
}

func TestGridLines(t *testing.T) {
	c := NewCanvas(200, 200)
	s := DefaultConfig().Grid
	drawGrid(NewPainter(c), 200, s)

	img := c.RGBA()
	want := blend.Premultiply(s.LineColor)
	for _, x := range []int{0, 48, 96, 144, 192} {
		if got := img.RGBAAt(x, 20); got != want {
			t.Errorf("vertical line at x=%d: %v, want %v", x, got, want)
		}
	}
	if got := img.RGBAAt(20, 48); got != want {
		t.Errorf("horizontal line at y=48: %v, want %v", got, want)
	}
	if got := img.RGBAAt(48, 48); got != want {
		t.Errorf("crossing at (48, 48): %v, want %v", got, want)
	}
	if got := img.RGBAAt(20, 20); got != (color.RGBA{}) {
		t.Errorf("between lines: %v, want transparent", got)
	}
}
