package pulseicon

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// Validation errors returned by Config.Validate.
var (
	ErrInvalidSize    = errors.New("pulseicon: canvas size must be positive")
	ErrInvalidSamples = errors.New("pulseicon: waveform needs at least two samples")
	ErrInvalidCorner  = errors.New("pulseicon: corner fraction must be in [0, 0.5]")
)

// Config holds every constant that shapes the icon.
//
// Positions that derive from the canvas size (grid extent, pulse span,
// vignette, corner mask) follow Size. The rack silhouette and the
// indicator row are placed at absolute pixel positions.
type Config struct {
	Size           int
	Seed           uint64
	CornerFraction float64

	Background Gradient
	Grid       GridStyle
	Rack       RackStyle
	Pulse      PulseStyle
	Indicators []Indicator
	Vignette   VignetteStyle
	Border     BorderStyle
}

// Gradient is a vertical two-stop background.
type Gradient struct {
	Top, Bottom color.NRGBA
}

// GridStyle describes the circuit texture overlay.
type GridStyle struct {
	Spacing        int
	LineColor      color.NRGBA
	DotColor       color.NRGBA
	DotRadius      int
	DotProbability float64
}

// RackStyle describes the server rack silhouette.
type RackStyle struct {
	X, Y, W, H   int
	CornerRadius int
	StrokeWidth  int
	UnitHeight   int
	Color        color.NRGBA
	LEDColor     color.NRGBA
}

// PulseStyle describes the heartbeat waveform and its glow.
type PulseStyle struct {
	Color          color.NRGBA
	CenterOffset   int // added to Size/2 to get the baseline
	Amplitude      float64
	Margin         int
	Samples        int
	LineWidth      float64
	GlowRadius     int
	EndpointRadius int
}

// Indicator is one status dot.
type Indicator struct {
	X, Y  int
	Color color.NRGBA
}

// VignetteStyle describes the radial edge darkening.
type VignetteStyle struct {
	Step     int
	Width    float64
	Strength float64
	MaxAlpha int
}

// BorderStyle describes the inner border drawn after masking.
type BorderStyle struct {
	Inset int
	Width float64
	Color color.NRGBA
}

var (
	healthy = color.NRGBA{0, 255, 136, 200}
	warning = color.NRGBA{255, 200, 50, 160}
)

// DefaultConfig returns the configuration of the ServerPulse icon.
func DefaultConfig() Config {
	return Config{
		Size:           1024,
		Seed:           42,
		CornerFraction: 0.2237,
		Background: Gradient{
			Top:    color.NRGBA{18, 18, 40, 255},
			Bottom: color.NRGBA{28, 32, 60, 255},
		},
		Grid: GridStyle{
			Spacing:        48,
			LineColor:      color.NRGBA{35, 40, 70, 40},
			DotColor:       color.NRGBA{40, 55, 90, 70},
			DotRadius:      3,
			DotProbability: 0.08,
		},
		Rack: RackStyle{
			X: 280, Y: 300, W: 464, H: 500,
			CornerRadius: 20,
			StrokeWidth:  3,
			UnitHeight:   80,
			Color:        color.NRGBA{35, 40, 68, 55},
			LEDColor:     color.NRGBA{0, 255, 136, 30},
		},
		Pulse: PulseStyle{
			Color:          color.NRGBA{0, 255, 136, 255},
			CenterOffset:   20,
			Amplitude:      180,
			Margin:         80,
			Samples:        200,
			LineWidth:      6,
			GlowRadius:     20,
			EndpointRadius: 10,
		},
		Indicators: []Indicator{
			{X: 340, Y: 860, Color: healthy},
			{X: 420, Y: 860, Color: healthy},
			{X: 500, Y: 860, Color: healthy},
			{X: 580, Y: 860, Color: warning},
			{X: 660, Y: 860, Color: healthy},
		},
		Vignette: VignetteStyle{
			Step:     2,
			Width:    3,
			Strength: 120,
			MaxAlpha: 180,
		},
		Border: BorderStyle{
			Inset: 1,
			Width: 2,
			Color: color.NRGBA{255, 255, 255, 20},
		},
	}
}

// CornerRadius returns the icon corner radius in pixels.
func (c Config) CornerRadius() int {
	return int(float64(c.Size) * c.CornerFraction)
}

// Waveform returns the pulse waveform laid out on this canvas.
func (c Config) Waveform() Waveform {
	return NewWaveform(
		float64(c.Size/2+c.Pulse.CenterOffset),
		c.Pulse.Amplitude,
		float64(c.Pulse.Margin),
		float64(c.Size-c.Pulse.Margin),
		c.Pulse.Samples,
	)
}

// Validate reports whether the configuration can be rendered.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Size)
	}
	if c.Pulse.Samples < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.Pulse.Samples)
	}
	if c.CornerFraction < 0 || c.CornerFraction > 0.5 {
		return fmt.Errorf("%w: got %v", ErrInvalidCorner, c.CornerFraction)
	}
	return nil
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	c.Indicators = slices.Clone(c.Indicators)
	return c
}

// Option configures a Composer during creation.
//
// Example:
//
//	// The ServerPulse icon
//	ic, err := pulseicon.New()
//
//	// A different dot layout
//	ic, err := pulseicon.New(pulseicon.WithSeed(7))
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg.clone()
	}
}

// WithSize sets the canvas edge length in pixels.
func WithSize(size int) Option {
	return func(c *Config) {
		c.Size = size
	}
}

// WithSeed sets the seed of the texture dot generator.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithPulse replaces the waveform style.
func WithPulse(p PulseStyle) Option {
	return func(c *Config) {
		c.Pulse = p
	}
}

// WithIndicators replaces the status dots.
func WithIndicators(ind ...Indicator) Option {
	return func(c *Config) {
		c.Indicators = slices.Clone(ind)
	}
}

// WithCornerFraction sets the corner radius as a fraction of the size.
func WithCornerFraction(f float64) Option {
	return func(c *Config) {
		c.CornerFraction = f
	}
}
