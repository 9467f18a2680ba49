package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Tone describes one enveloped note.
type Tone struct {
	Frequency float64
	Envelope  Envelope
	Duration  time.Duration // oscillator stop time
	Volume    float64       // linear, 0.0 - 1.0
}

// Streamer renders t as a finite beep stream.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	osc := beep.Take(rate.N(t.Duration), NewSine(t.Frequency, rate))
	shaped := NewEnvelope(osc, t.Envelope, rate)
	return newVolume(shaped, t.Volume)
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
