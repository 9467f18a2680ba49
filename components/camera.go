package components

import (
	"github.com/yohamta/donburi"
)

// CameraData holds the horizontal scroll offset (left edge of the view in world units).
type CameraData struct {
	X float64
}

var Camera = donburi.NewComponentType[CameraData]()
