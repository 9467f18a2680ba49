package components

import (
	"image/color"

	cfg "github.com/automoto/starsong/config"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image      cfg.ImageID
	GlowRadius float64
	GlowColor  color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
