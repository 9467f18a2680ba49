package systems

import (
	"log"

	cfg "github.com/automoto/starsong/config"
	"github.com/yohamta/donburi/ecs"
)

// AssetSource reports per-image load progress.
type AssetSource interface {
	Loaded(id cfg.ImageID) bool
}

// NewUpdateAssets mirrors the background's loaded flag into the session,
// which gates starting play on it.
func NewUpdateAssets(src AssetSource) ecs.System {
	return func(e *ecs.ECS) {
		session := GetSession(e)
		if session.BackgroundLoaded || !src.Loaded(cfg.ImageBackground) {
			return
		}
		session.BackgroundLoaded = true
		log.Printf("assets: background ready")
	}
}
