package pulseicon

import (
	"io"
	"time"
)

// Composer renders the icon from an immutable Config.
//
// Rendering is a fixed sequence of layers painted in order onto one base
// canvas, followed by the corner mask and inner border. Nothing in the
// sequence depends on external state, so equal configs give equal pixels.
type Composer struct {
	cfg Config
}

// New creates a Composer from DefaultConfig adjusted by opts.
func New(opts ...Option) (*Composer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Composer{cfg: cfg.clone()}, nil
}

// Config returns a copy of the composer's configuration.
func (ic *Composer) Config() Config {
	return ic.cfg.clone()
}

// step is one stage of the painting sequence.
type step struct {
	name string
	run  func(base *Canvas, cfg Config)
}

// onLayer wraps a drawing function so that it paints onto a fresh
// transparent layer which is then composited over the base.
func onLayer(draw func(p *Painter, cfg Config)) func(*Canvas, Config) {
	return func(base *Canvas, cfg Config) {
		layer := NewCanvas(base.Width(), base.Height())
		draw(NewPainter(layer), cfg)
		base.Composite(layer)
	}
}

// pipeline lists the layers in painting order.
var pipeline = []step{
	{"background", func(base *Canvas, cfg Config) {
		layer := NewCanvas(base.Width(), base.Height())
		cfg.Background.Paint(layer)
		base.Composite(layer)
	}},
	{"texture", onLayer(drawTexture)},
	{"rack", onLayer(func(p *Painter, cfg Config) {
		drawRack(p, cfg.Rack)
	})},
	{"pulse", func(base *Canvas, cfg Config) {
		drawGlowLine(base, cfg.Waveform().Points(), cfg.Pulse.Color, cfg.Pulse.LineWidth, cfg.Pulse.GlowRadius)
	}},
	{"endpoint", onLayer(func(p *Painter, cfg Config) {
		drawEndpoint(p, cfg.Waveform().Last(), cfg.Pulse.Color, cfg.Pulse.EndpointRadius)
	})},
	{"indicators", onLayer(func(p *Painter, cfg Config) {
		drawIndicators(p, cfg.Indicators)
	})},
	{"vignette", onLayer(func(p *Painter, cfg Config) {
		drawVignette(p, cfg.Size, cfg.Vignette)
	})},
}

// Render paints the icon and returns the finished canvas.
func (ic *Composer) Render() *Canvas {
	log := Logger()
	cfg := ic.cfg

	base := NewCanvas(cfg.Size, cfg.Size)
	for _, s := range pipeline {
		start := time.Now()
		s.run(base, cfg)
		log.Debug("pulseicon: layer composited", "step", s.name, "elapsed", time.Since(start))
	}

	start := time.Now()
	out := finalize(base, cfg)
	log.Debug("pulseicon: mask applied", "radius", cfg.CornerRadius(), "elapsed", time.Since(start))
	return out
}

// Encode renders the icon and writes it to w as PNG.
func (ic *Composer) Encode(w io.Writer) error {
	return ic.Render().EncodePNG(w)
}

// WriteFile renders the icon and writes it to path as PNG, replacing any
// existing file. The parent directory must exist.
func (ic *Composer) WriteFile(path string) error {
	img := ic.Render()
	if err := img.SavePNG(path); err != nil {
		return err
	}
	Logger().Info("pulseicon: icon written",
		"path", path,
		"width", img.Width(),
		"height", img.Height(),
		"sha256", img.Digest())
	return nil
}
