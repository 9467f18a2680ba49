package config

// ImageID identifies a sprite image
type ImageID int

const (
	ImagePlayer ImageID = iota
	ImagePlayerHit
	ImageStar
	ImageBackground
	ImageCount
)

// AssetConfig maps images to file names under the asset directory
type AssetConfig struct {
	Files map[ImageID]string
}

var Assets AssetConfig

func init() {
	Assets = AssetConfig{
		Files: map[ImageID]string{
			ImagePlayer:     "player.png",
			ImagePlayerHit:  "player_hit.png",
			ImageStar:       "star.png",
			ImageBackground: "background.png",
		},
	}
}
