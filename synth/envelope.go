package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Envelope is an exponential attack/decay gain curve. Gain starts at Floor,
// rises to Peak at Attack, falls back to Floor at Decay and holds there.
type Envelope struct {
	Floor  float64
	Peak   float64
	Attack time.Duration
	Decay  time.Duration
}

// Gain returns the envelope value t after note start.
func (e Envelope) Gain(t time.Duration) float64 {
	if e.Floor <= 0 || e.Peak <= 0 {
		return 0
	}
	switch {
	case t <= 0:
		return e.Floor
	case t < e.Attack:
		return expRamp(e.Floor, e.Peak, float64(t)/float64(e.Attack))
	case t < e.Decay:
		return expRamp(e.Peak, e.Floor, float64(t-e.Attack)/float64(e.Decay-e.Attack))
	}
	return e.Floor
}

// expRamp interpolates exponentially from v0 to v1; both must be positive.
func expRamp(v0, v1, frac float64) float64 {
	return v0 * math.Pow(v1/v0, frac)
}

type envelope struct {
	streamer beep.Streamer
	shape    Envelope
	rate     beep.SampleRate
	position int
}

// NewEnvelope shapes s with e, sample by sample.
func NewEnvelope(s beep.Streamer, e Envelope, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, shape: e, rate: rate}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.shape.Gain(e.rate.D(e.position))
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
