package systems

import (
	"github.com/automoto/starsong/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the collision cells of every object after movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
