package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
