package pulseicon

import (
	"iter"
	"math"
)

// Waveform is a stylized electrocardiogram trace sampled across a
// horizontal span. It holds no cursor: every accessor recomputes points
// from the parameters, so iteration can be restarted at will.
type Waveform struct {
	CenterY   float64 // baseline y
	Amplitude float64 // height of the R spike
	Start     float64 // x of the first sample
	End       float64 // x of the last sample
	Samples   int
}

// NewWaveform creates a waveform with the given layout.
func NewWaveform(centerY, amplitude, start, end float64, samples int) Waveform {
	return Waveform{
		CenterY:   centerY,
		Amplitude: amplitude,
		Start:     start,
		End:       end,
		Samples:   samples,
	}
}

// Len returns the number of samples.
func (w Waveform) Len() int {
	return w.Samples
}

// At returns sample i. The trace covers two full beats between Start and
// End; y grows downward, so upward deflections have negative offsets.
func (w Waveform) At(i int) Point {
	t := 0.0
	if w.Samples > 1 {
		t = float64(i) / float64(w.Samples-1)
	}
	x := w.Start + (w.End-w.Start)*t
	beatPos := math.Mod(t*2, 1.0)
	return Pt(x, w.CenterY+PulseOffset(beatPos, w.Amplitude))
}

// All returns a lazy sequence of (index, point) pairs.
func (w Waveform) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := 0; i < w.Samples; i++ {
			if !yield(i, w.At(i)) {
				return
			}
		}
	}
}

// Points returns every sample in order.
func (w Waveform) Points() []Point {
	pts := make([]Point, 0, w.Samples)
	for _, p := range w.All() {
		pts = append(pts, p)
	}
	return pts
}

// Last returns the final sample.
func (w Waveform) Last() Point {
	return w.At(w.Samples - 1)
}

// PulseOffset returns the vertical deflection at beatPos in [0, 1) within
// one heartbeat. Negative values point up on screen.
//
// The beat runs: baseline ripple, P wave, flat, Q dip, R spike (the full
// amplitude), S dip, decaying return, T wave, baseline ripple.
func PulseOffset(beatPos, amplitude float64) float64 {
	switch {
	case beatPos < 0.30:
		return math.Sin(beatPos*20) * 3
	case beatPos < 0.35:
		lt := (beatPos - 0.30) / 0.05
		return -amplitude * 0.12 * math.Sin(lt*math.Pi)
	case beatPos < 0.40:
		return 0
	case beatPos < 0.43:
		lt := (beatPos - 0.40) / 0.03
		return amplitude * 0.10 * math.Sin(lt*math.Pi)
	case beatPos < 0.50:
		lt := (beatPos - 0.43) / 0.07
		return -amplitude * math.Sin(lt*math.Pi)
	case beatPos < 0.55:
		lt := (beatPos - 0.50) / 0.05
		return amplitude * 0.3 * math.Sin(lt*math.Pi)
	case beatPos < 0.65:
		lt := (beatPos - 0.55) / 0.10
		return amplitude * 0.3 * (1 - lt) * math.Sin(lt*math.Pi*0.5)
	case beatPos < 0.75:
		lt := (beatPos - 0.65) / 0.10
		return -amplitude * 0.15 * math.Sin(lt*math.Pi)
	default:
		return math.Sin(beatPos*15) * 2
	}
}
