package factory

import (
	"github.com/automoto/starsong/archetypes"
	"github.com/automoto/starsong/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton for an initial viewport. The
// viewport starts marked as changed so the first tick builds the world.
func CreateSession(ecs *ecs.ECS, width, height float64, compact bool) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		State:     components.SessionIdle,
		HintAlpha: 1,
	})
	components.Viewport.SetValue(session, components.ViewportData{
		Width:   width,
		Height:  height,
		Compact: compact,
		Changed: true,
	})
	return session
}
