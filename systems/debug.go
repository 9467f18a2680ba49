package systems

import (
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object when collider display is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	camX := getOrCreateCamera(ecs).X
	viewW := float64(screen.Bounds().Dx())

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < camX || obj.X > camX+viewW {
			continue
		}

		x := obj.X - camX
		y := obj.Y

		c := cfg.DebugCyan
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.DebugBlue
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
