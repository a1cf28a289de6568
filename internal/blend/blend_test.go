package blend

import (
	"image"
	"image/color"
	"testing"
)

func TestModeString(t *testing.T) {
	if ModeSource.String() != "source" {
		t.Errorf("ModeSource.String() = %q", ModeSource.String())
	}
	if ModeSourceOver.String() != "source-over" {
		t.Errorf("ModeSourceOver.String() = %q", ModeSourceOver.String())
	}
	if Mode(42).String() != "unknown" {
		t.Errorf("Mode(42).String() = %q", Mode(42).String())
	}
}

func TestPremultiply(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.RGBA
	}{
		{"opaque", color.NRGBA{10, 20, 30, 255}, color.RGBA{10, 20, 30, 255}},
		{"transparent", color.NRGBA{255, 255, 255, 0}, color.RGBA{0, 0, 0, 0}},
		{"half", color.NRGBA{255, 128, 0, 128}, color.RGBA{128, 64, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Premultiply(tt.in); got != tt.want {
				t.Errorf("Premultiply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBlendSourceFullCoverageReplaces(t *testing.T) {
	r, g, b, a := blendSource(10, 20, 30, 40, 200, 200, 200, 255, 255)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("blendSource = (%d, %d, %d, %d), want (10, 20, 30, 40)", r, g, b, a)
	}
}

func TestBlendSourcePartialCoverageInterpolates(t *testing.T) {
	// Half coverage of opaque white over transparent gives half-alpha white.
	r, g, b, a := blendSource(255, 255, 255, 255, 0, 0, 0, 0, 128)
	if r != 128 || g != 128 || b != 128 || a != 128 {
		t.Errorf("blendSource = (%d, %d, %d, %d), want (128, 128, 128, 128)", r, g, b, a)
	}
}

func TestBlendSourceOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst [4]byte
		cov      byte
		want     [4]byte
	}{
		{"opaque source wins", [4]byte{255, 0, 0, 255}, [4]byte{0, 0, 255, 255}, 255, [4]byte{255, 0, 0, 255}},
		{"transparent source keeps dst", [4]byte{0, 0, 0, 0}, [4]byte{0, 0, 255, 255}, 255, [4]byte{0, 0, 255, 255}},
		{"zero coverage keeps dst", [4]byte{255, 0, 0, 255}, [4]byte{0, 0, 255, 255}, 0, [4]byte{0, 0, 255, 255}},
		{"half source over opaque", [4]byte{128, 0, 0, 128}, [4]byte{0, 0, 255, 255}, 255, [4]byte{128, 0, 127, 255}},
		{"over transparent", [4]byte{128, 0, 0, 128}, [4]byte{0, 0, 0, 0}, 255, [4]byte{128, 0, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := blendSourceOver(tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3], tt.cov)
			if got := [4]byte{r, g, b, a}; got != tt.want {
				t.Errorf("blendSourceOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFillMask(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	cov := image.NewAlpha(image.Rect(0, 0, 2, 2))
	cov.Pix = []byte{255, 0, 0, 255}

	FillMask(dst, image.Pt(1, 1), cov, color.RGBA{0, 255, 0, 255}, ModeSource)

	want := map[image.Point]color.RGBA{
		{1, 1}: {0, 255, 0, 255},
		{2, 1}: {0, 0, 0, 0},
		{1, 2}: {0, 0, 0, 0},
		{2, 2}: {0, 255, 0, 255},
		{0, 0}: {0, 0, 0, 0},
		{3, 3}: {0, 0, 0, 0},
	}
	for pt, w := range want {
		if got := dst.RGBAAt(pt.X, pt.Y); got != w {
			t.Errorf("pixel %v = %v, want %v", pt, got, w)
		}
	}
}

func TestFillMaskClipsToDestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	cov := image.NewAlpha(image.Rect(0, 0, 3, 3))
	for i := range cov.Pix {
		cov.Pix[i] = 255
	}

	// Partially off-canvas on both sides; must not panic.
	FillMask(dst, image.Pt(-1, -1), cov, color.RGBA{255, 255, 255, 255}, ModeSourceOver)
	FillMask(dst, image.Pt(1, 1), cov, color.RGBA{255, 255, 255, 255}, ModeSourceOver)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.RGBAAt(x, y); got.A != 255 {
				t.Errorf("pixel (%d, %d) alpha = %d, want 255", x, y, got.A)
			}
		}
	}
}
