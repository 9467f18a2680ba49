package main

import (
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/automoto/starsong/assets"
	"github.com/automoto/starsong/config"
	"github.com/automoto/starsong/fonts"
	"github.com/automoto/starsong/scenes"
	"github.com/automoto/starsong/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.SongScene
	last  time.Time
}

func NewGame(rt config.Runtime) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: glow disabled: %v", err)
	}

	var assetFS fs.FS
	if rt.AssetDir != "" {
		assetFS = os.DirFS(rt.AssetDir)
	}
	images := assets.NewImageLoader(assetFS)
	images.Start()

	compact := rt.CompactDevice()
	log.Printf("starting %dx%d (compact=%v, assets=%q)", rt.Width, rt.Height, compact, rt.AssetDir)

	return &Game{
		scene: scenes.NewSongScene(scenes.SongOptions{
			Width:   config.C.Width,
			Height:  config.C.Height,
			Compact: compact,
			Images:  images,
			Input:   &systems.EbitenInput{},
			Tones:   systems.NewSynthEngine(),
		}),
	}
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.scene.Tick(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the logical screen, so the level is laid
// out for whatever the player is looking at.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.SetViewport(width, height)
	return width, height
}

func main() {
	rt, err := config.LoadRuntime()
	if err != nil {
		log.Printf("Warning: using default settings: %v", err)
		rt = config.DefaultRuntime()
	}
	rt.Apply()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(rt)); err != nil {
		log.Fatal(err)
	}
}
