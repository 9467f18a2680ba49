package scenes

import (
	"image/color"

	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/fonts"
	"github.com/automoto/starsong/systems"
	"github.com/automoto/starsong/systems/factory"
	"github.com/automoto/starsong/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ImageProvider loads sprites and reports their progress.
type ImageProvider interface {
	systems.AssetSource
	systems.ImageSource
}

// SongOptions are the host services a SongScene runs against.
type SongOptions struct {
	Width, Height int
	Compact       bool
	Images        ImageProvider
	Input         systems.InputSource
	Tones         systems.ToneEngine
}

// SongScene owns the game world. The host drives it with Tick and Draw and
// reports screen size changes through SetViewport.
type SongScene struct {
	ecs     *ecs.ECS
	images  ImageProvider
	overlay *ui.Overlay
	compact bool
}

func NewSongScene(opts SongOptions) *SongScene {
	s := &SongScene{images: opts.Images, compact: opts.Compact}
	s.configure(opts)
	return s
}

func (s *SongScene) configure(opts SongOptions) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Lifecycle systems always run
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.NewUpdateAssets(opts.Images))
	ecs.AddSystem(systems.NewUpdateInput(opts.Input))
	ecs.AddSystem(systems.UpdateSession)

	// Gameplay systems only run while the session is running
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdateHint))
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdateCamera))

	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.NewUpdateAudio(opts.Tones))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.WithWorldVisible(systems.NewDrawBackground(opts.Images)))
	ecs.AddRenderer(cfg.Default, systems.WithWorldVisible(systems.DrawGround))
	ecs.AddRenderer(cfg.Default, systems.WithWorldVisible(systems.NewDrawStars(opts.Images)))
	ecs.AddRenderer(cfg.Default, systems.WithWorldVisible(systems.NewDrawPlayer(opts.Images)))
	ecs.AddRenderer(cfg.Default, systems.WithWorldVisible(systems.DrawDedication))
	ecs.AddRenderer(cfg.Default, systems.WithWorldVisible(systems.DrawHint))
	ecs.AddRenderer(cfg.Default, systems.WithWorldVisible(systems.DrawDebug))

	s.ecs = ecs

	factory.CreateCamera(s.ecs)
	factory.CreateLevel(s.ecs, cfg.Melody)
	factory.CreateSession(s.ecs, float64(opts.Width), float64(opts.Height), opts.Compact)
}

// Tick advances the world by dt seconds.
func (s *SongScene) Tick(dt float64) {
	systems.AdvanceClock(s.ecs, dt)
	s.ecs.Update()

	if s.overlay != nil {
		s.overlay.Sync(s.State())
		s.overlay.Update()
	}
}

// SetViewport reports the host's logical screen size.
func (s *SongScene) SetViewport(width, height int) {
	systems.SetViewport(s.ecs, float64(width), float64(height))
	if s.overlay != nil {
		s.overlay.Resize(width, height)
	}
}

// State returns the current session state.
func (s *SongScene) State() components.SessionState {
	return systems.GetSession(s.ecs).State
}

func (s *SongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	s.ecs.Draw(screen)

	if s.overlay == nil && fonts.Loaded(fonts.Prompt) && fonts.Loaded(fonts.Hint) {
		b := screen.Bounds()
		s.overlay = ui.NewOverlay(b.Dx(), b.Dy(), s.compact)
		s.overlay.Sync(s.State())
	}
	if s.overlay != nil {
		s.overlay.Draw(screen)
	}
}
