package components

import (
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the authoritative position and size of a world entity.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
