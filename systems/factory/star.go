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

// CreateStar spawns the uncollected star for melody position index.
func CreateStar(ecs *ecs.ECS, space *resolv.Space, r gamemath.Rect, index int, freq float64) *donburi.Entry {
	star := archetypes.Star.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	components.Object.SetValue(star, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvStar)
	obj.Data = star
	space.Add(obj)

	components.Star.SetValue(star, components.StarData{
		Index:     index,
		Frequency: freq,
	})
	components.Sprite.SetValue(star, components.SpriteData{
		Image:      cfg.ImageStar,
		GlowRadius: cfg.UI.StarGlowRadius,
		GlowColor:  cfg.UI.StarGlowColor,
	})

	return star
}
