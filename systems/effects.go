package systems

import (
	"github.com/automoto/starsong/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects drops timed effects that expired by the current frame.
func UpdateEffects(ecs *ecs.ECS) {
	getOrCreateEffects(ecs).Prune(GetClock(ecs).Elapsed)
}

// PlayerHitActive reports whether the player should show the hit sprite.
func PlayerHitActive(ecs *ecs.ECS) bool {
	return getOrCreateEffects(ecs).Active(components.EffectPlayerHit, GetClock(ecs).Elapsed)
}

func getOrCreateEffects(ecs *ecs.ECS) *components.EffectsData {
	entry, ok := components.Effects.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Effects))
	}
	return components.Effects.Get(entry)
}
