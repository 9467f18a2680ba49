package components

import (
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Intent gamemath.Intent // Resolved from input each tick
}

var Player = donburi.NewComponentType[PlayerData]()
