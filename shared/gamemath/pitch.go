package gamemath

import "math"

// PitchRange returns the lowest and highest frequency in freqs.
// An empty table yields (0, 0).
func PitchRange(freqs []float64) (lo, hi float64) {
	if len(freqs) == 0 {
		return 0, 0
	}
	lo, hi = freqs[0], freqs[0]
	for _, f := range freqs[1:] {
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	return lo, hi
}

// NoteHeight maps freq linearly from [lo, hi] to [0, maxHeight].
// A degenerate range maps every pitch to 0.
func NoteHeight(freq, lo, hi, maxHeight float64) float64 {
	span := hi - lo
	if span == 0 {
		return 0
	}
	return (freq - lo) / span * maxHeight
}
