package systems

import (
	"github.com/automoto/starsong/components"
	"github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/automoto/starsong/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view toward the player and keeps it inside the level.
func UpdateCamera(e *ecs.ECS) {
	camera := getOrCreateCamera(e)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level, _, ok := GetLevel(e)
	if !ok {
		return
	}

	playerObject := components.Object.Get(playerEntry)
	camera.X = gamemath.FollowCamera(
		camera.X,
		playerObject.X,
		GetViewport(e).Width,
		level.Width,
		config.Camera.FollowSmoothing,
	)
}

func getOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Camera))
	}
	return components.Camera.Get(entry)
}
