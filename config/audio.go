package config

import "time"

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Volume     float64 // master volume, 0.0 - 1.0
}

// NoteConfig describes the envelope of a collection tone
type NoteConfig struct {
	Floor    float64       // gain at the start and end of the envelope
	Peak     float64       // gain reached at the end of the attack
	Attack   time.Duration // exponential rise from Floor to Peak
	Decay    time.Duration // time from note start to reach Floor again
	Duration time.Duration // oscillator stop time
}

var Audio AudioConfig
var Note NoteConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Volume:     1.0,
	}

	Note = NoteConfig{
		Floor:    0.001,
		Peak:     0.25,
		Attack:   30 * time.Millisecond,
		Decay:    600 * time.Millisecond,
		Duration: 700 * time.Millisecond,
	}
}
