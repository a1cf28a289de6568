package pulseicon

import (
	"image"
	"testing"

	"github.com/serverpulse/pulseicon/internal/blend"
)

func TestDrawRack(t *testing.T) {
	s := DefaultConfig().Rack
	c := NewCanvas(1024, 1024)
	drawRack(NewPainter(c), s)

	img := c.RGBA()
	body := blend.Premultiply(s.Color)
	led := blend.Premultiply(s.LEDColor)

	if got := img.RGBAAt(512, 301); got != body {
		t.Errorf("outline = %v, want %v", got, body)
	}
	for i := 1; i < 6; i++ {
		y := s.Y + i*s.UnitHeight
		if got := img.RGBAAt(512, y); got != body {
			t.Errorf("divider %d at y=%d = %v, want %v", i, y, got, body)
		}
	}
	for i := 0; i < 6; i++ {
		y := s.Y + 40 + i*s.UnitHeight
		if got := img.RGBAAt(s.X+34, y); got != led {
			t.Errorf("LED %d = %v, want %v", i, got, led)
		}
	}
	if got := img.RGBAAt(512, 320); got.A != 0 {
		t.Errorf("empty unit interior alpha = %d, want 0", got.A)
	}
}

func TestDrawVignette(t *testing.T) {
	c := NewCanvas(64, 64)
	drawVignette(NewPainter(c), 64, DefaultConfig().Vignette)

	edge := c.NRGBAAt(32, 1)
	inner := c.NRGBAAt(32, 26)
	if edge.A >= inner.A {
		t.Errorf("edge alpha %d not below inner alpha %d", edge.A, inner.A)
	}
	if inner.R != 0 || inner.G != 0 || inner.B != 0 {
		t.Errorf("vignette ink = %v, want black", inner)
	}
	if inner.A > 180 {
		t.Errorf("alpha %d exceeds the cap", inner.A)
	}
}

func TestDrawGlowLine(t *testing.T) {
	base := NewCanvas(200, 100)
	base.Clear(Black)
	green := DefaultConfig().Pulse.Color

	drawGlowLine(base, []Point{Pt(20, 50), Pt(100, 50), Pt(180, 50)}, green, 6, 10)

	if got := base.NRGBAAt(100, 50); got != green {
		t.Errorf("line = %v, want %v", got, green)
	}
	halo := base.NRGBAAt(100, 40)
	if halo.G == 0 || halo.G == 255 {
		t.Errorf("halo = %v, want partial green", halo)
	}
	if got := base.NRGBAAt(100, 5); got != Black {
		t.Errorf("far from the line = %v, want untouched", got)
	}
}

func TestDrawEndpoint(t *testing.T) {
	c := NewCanvas(60, 60)
	green := DefaultConfig().Pulse.Color
	drawEndpoint(NewPainter(c), Pt(30, 30), green, 10)

	if got := c.NRGBAAt(30, 30); got != Brighten(green, 80) {
		t.Errorf("core = %v, want %v", got, Brighten(green, 80))
	}
	if got := c.NRGBAAt(30, 22); got != green {
		t.Errorf("disc = %v, want %v", got, green)
	}
	ring := c.NRGBAAt(30, 15)
	if ring.A == 0 || ring.A >= 80 {
		t.Errorf("ring alpha = %d, want in (0, 80)", ring.A)
	}
}

func TestPointBounds(t *testing.T) {
	got := pointBounds([]Point{Pt(1.5, 2), Pt(4, 7)}, 1)
	if want := image.Rect(0, 1, 6, 9); got != want {
		t.Errorf("pointBounds() = %v, want %v", got, want)
	}
	if !pointBounds(nil, 3).Empty() {
		t.Error("pointBounds(nil) not empty")
	}
}
