package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionState is the coarse lifecycle of a play session
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionBlocked
	SessionRunning
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionBlocked:
		return "blocked"
	case SessionRunning:
		return "running"
	}
	return "unknown"
}

type SessionData struct {
	State              SessionState
	BackgroundLoaded   bool
	PendingResetFrames int // Frames left before the deferred world reset; 0 = none
	HintAlpha          float64
	Hint               *gween.Tween
}

var Session = donburi.NewComponentType[SessionData]()
