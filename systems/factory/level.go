package factory

import (
	"slices"

	"github.com/automoto/starsong/archetypes"
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity holding the melody. Geometry is filled
// in by the first world build.
func CreateLevel(ecs *ecs.ECS, melody []float64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Width: cfg.World.LevelWidth,
	})
	components.Melody.SetValue(level, components.MelodyData{
		Notes: slices.Clone(melody),
	})
	return level
}
