package components

import (
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LevelData is the geometry produced by the last world build.
type LevelData struct {
	Width   float64
	GroundY float64
	Bounds  gamemath.Rect // Area covered by collision cells
	Builds  int           // Number of world builds so far
}

var Level = donburi.NewComponentType[LevelData]()
