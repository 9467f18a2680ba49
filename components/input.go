package components

import (
	cfg "github.com/automoto/starsong/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current        [cfg.ActionCount]bool
	Previous       [cfg.ActionCount]bool
	StartRequested bool // Any key, button or touch went down this frame
}

var Input = donburi.NewComponentType[InputData]()
