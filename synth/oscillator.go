package synth

import (
	"math"

	"github.com/gopxl/beep"
)

// sine generates an endless sine wave at a fixed frequency.
type sine struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

// NewSine creates an unbounded sine oscillator. Wrap it with beep.Take or an
// envelope to limit its length.
func NewSine(freq float64, rate beep.SampleRate) beep.Streamer {
	return &sine{freq: freq, rate: rate}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	step := o.freq / float64(o.rate)
	for i := range samples {
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += step
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }
