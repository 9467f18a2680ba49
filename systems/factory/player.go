package factory

import (
	"github.com/automoto/starsong/archetypes"
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/automoto/starsong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at r, resting on the ground.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, r gamemath.Rect) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)

	components.Physics.SetValue(player, components.PhysicsData{
		OnGround: true,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Image:      cfg.ImagePlayer,
		GlowRadius: cfg.UI.PlayerGlowRadius,
		GlowColor:  cfg.UI.PlayerGlowColor,
	})

	return player
}
