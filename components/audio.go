package components

import (
	"github.com/yohamta/donburi"
)

// AudioData stores note playback state (singleton component)
type AudioData struct {
	Activated   bool // Set once a real input event has unlocked audio output
	NotesPlayed int
}

var Audio = donburi.NewComponentType[AudioData]()
