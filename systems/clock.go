package systems

import (
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock records the time covered by the next tick. dt is clamped to
// [0, Physics.MaxFrameDelta] so a long stall cannot tunnel the player.
func AdvanceClock(e *ecs.ECS, dt float64) {
	clock := GetClock(e)
	clock.Delta = gamemath.Clamp(dt, 0, cfg.Physics.MaxFrameDelta)
	clock.Elapsed += clock.Delta
}

// GetClock returns the frame clock singleton.
func GetClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
