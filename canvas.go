package pulseicon

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Canvas is a premultiplied RGBA raster. The base image and every layer
// composited onto it are Canvases of identical size.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// RGBA returns the underlying image. Mutating it mutates the canvas.
func (c *Canvas) RGBA() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col color.NRGBA) {
	p := color.RGBAModel.Convert(col).(color.RGBA)
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = p.R
		pix[i+1] = p.G
		pix[i+2] = p.B
		pix[i+3] = p.A
	}
}

// FillRow sets every pixel of row y to col, replacing what was there.
func (c *Canvas) FillRow(y int, col color.NRGBA) {
	if y < 0 || y >= c.Height() {
		return
	}
	p := color.RGBAModel.Convert(col).(color.RGBA)
	i := c.img.PixOffset(0, y)
	row := c.img.Pix[i : i+c.Width()*4]
	for x := 0; x < len(row); x += 4 {
		row[x+0] = p.R
		row[x+1] = p.G
		row[x+2] = p.B
		row[x+3] = p.A
	}
}

// NRGBAAt returns the straight-alpha color of a pixel.
// Coordinates outside the canvas return Transparent.
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}.In(c.img.Rect)) {
		return Transparent
	}
	return color.NRGBAModel.Convert(c.img.RGBAAt(x, y)).(color.NRGBA)
}

// Composite blends layer over c with the Porter-Duff source-over operator.
// The layer must have the same dimensions as c.
func (c *Canvas) Composite(layer *Canvas) {
	mustMatch(c.img.Rect, layer.img.Rect)
	xdraw.Draw(c.img, c.img.Rect, layer.img, layer.img.Rect.Min, xdraw.Over)
}

// Clone creates a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	clone := &Canvas{img: image.NewRGBA(c.img.Rect)}
	copy(clone.img.Pix, c.img.Pix)
	return clone
}

// EncodePNG writes the canvas as a PNG with alpha channel.
func (c *Canvas) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path as PNG, replacing any existing file.
// The parent directory must exist.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the caller
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := c.EncodePNG(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Digest returns the hex SHA-256 of the raw pixel buffer.
func (c *Canvas) Digest() string {
	sum := sha256.Sum256(c.img.Pix)
	return hex.EncodeToString(sum[:])
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// mustMatch panics when two rasters that are composited together differ in
// size. Every raster in the pipeline is allocated from the same Config, so a
// mismatch is a programming error.
func mustMatch(a, b image.Rectangle) {
	if a != b {
		panic(fmt.Sprintf("pulseicon: raster size mismatch: %v vs %v", a, b))
	}
}
