package factory

import (
	"math"

	"github.com/automoto/starsong/archetypes"
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cell := cfg.World.CellSize
	spaceData := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceBounds is the area a space created with width and height covers with
// whole cells. Objects outside it are not registered in any cell.
func SpaceBounds(width, height float64) gamemath.Rect {
	cell := float64(cfg.World.CellSize)
	return gamemath.Rect{
		W: math.Floor(math.Ceil(width)/cell) * cell,
		H: math.Floor(math.Ceil(height)/cell) * cell,
	}
}
