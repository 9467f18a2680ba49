package systems

import (
	"image/color"
	"math"

	"github.com/automoto/starsong/assets"
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/fonts"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/automoto/starsong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ImageSource provides drawable images; nil means not loaded yet.
type ImageSource interface {
	Image(id cfg.ImageID) *ebiten.Image
}

// WithWorldVisible wraps a renderer to skip drawing while the session is blocked.
func WithWorldVisible(renderer ecs.RendererWithArg[ebiten.Image]) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if GetSession(e).State == components.SessionBlocked {
			return
		}
		renderer(e, screen)
	}
}

// NewDrawBackground tiles the background at a fraction of the camera speed
// and darkens it.
func NewDrawBackground(images ImageSource) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		bg := images.Image(cfg.ImageBackground)
		if bg == nil {
			screen.Fill(cfg.NightBlue)
			return
		}

		tileW := float64(w)
		offset := math.Mod(getOrCreateCamera(e).X*cfg.UI.ParallaxFactor, tileW)
		bw, bh := bg.Bounds().Dx(), bg.Bounds().Dy()
		for x := -offset; x < tileW; x += tileW {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(tileW/float64(bw), float64(h)/float64(bh))
			op.GeoM.Translate(x, 0)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(bg, op)
		}

		vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.UI.BackgroundDim, false)
	}
}

// DrawGround paints the ground line across the level.
func DrawGround(e *ecs.ECS, screen *ebiten.Image) {
	level, _, ok := GetLevel(e)
	if !ok {
		return
	}
	camX := getOrCreateCamera(e).X
	vector.FillRect(screen,
		float32(-camX), float32(level.GroundY),
		float32(level.Width), cfg.UI.GroundThickness,
		cfg.UI.GroundColor, false)
}

// NewDrawStars paints every uncollected star with its glow.
func NewDrawStars(images ImageSource) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		camX := getOrCreateCamera(e).X
		pulse := currentPulse(e)
		viewW := float64(screen.Bounds().Dx())

		tags.Star.Each(e.World, func(entry *donburi.Entry) {
			if components.Star.Get(entry).Collected {
				return
			}
			r := components.Object.Get(entry).Rect()
			sprite := components.Sprite.Get(entry)
			if r.X+r.W+sprite.GlowRadius*pulse < camX || r.X-sprite.GlowRadius*pulse > camX+viewW {
				return
			}
			drawGlow(screen, r.X-camX+r.W/2, r.Y+r.H/2, sprite.GlowRadius*pulse, sprite.GlowColor)
			drawSprite(screen, images.Image(sprite.Image), r, camX)
		})
	}
}

// NewDrawPlayer paints the player with its glow, swapping to the hit sprite
// while a pickup effect is active.
func NewDrawPlayer(images ImageSource) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		camX := getOrCreateCamera(e).X
		r := components.Object.Get(playerEntry).Rect()
		sprite := components.Sprite.Get(playerEntry)

		id := sprite.Image
		if PlayerHitActive(e) {
			id = cfg.ImagePlayerHit
		}

		drawGlow(screen, r.X-camX+r.W/2, r.Y+r.H/2, sprite.GlowRadius*currentPulse(e), sprite.GlowColor)
		drawSprite(screen, images.Image(id), r, camX)
	}
}

// DrawDedication shows the closing message once every note has played.
func DrawDedication(e *ecs.ECS, screen *ebiten.Image) {
	_, melody, ok := GetLevel(e)
	if !ok || !melody.Complete() || !fonts.Loaded(fonts.Dedication) {
		return
	}

	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	scale := gamemath.Pulse(GetClock(e).Elapsed, cfg.Effects.TextPulseSpeed, cfg.Effects.TextPulseAmount)
	face := fonts.Dedication.Face()

	for i, line := range cfg.UI.Dedication {
		y := h*cfg.UI.DedicationY + float64(i)*cfg.UI.DedicationGap
		// Soft halo behind the text
		for _, d := range [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			drawCenteredText(screen, line, face, w/2+d[0], y+d[1], scale, cfg.UI.TextShadowColor, 0.35)
		}
		drawCenteredText(screen, line, face, w/2, y, scale, cfg.UI.TextColor, 1)
	}
}

// DrawHint fades the controls hint out after play starts.
func DrawHint(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session.State != components.SessionRunning || session.HintAlpha <= 0 || !fonts.Loaded(fonts.Hint) {
		return
	}
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	drawCenteredText(screen, cfg.UI.ControlsText(GetViewport(e).Compact), fonts.Hint.Face(),
		w/2, h*cfg.UI.HintY, 1, cfg.UI.TextColor, float32(session.HintAlpha))
}

func currentPulse(e *ecs.ECS) float64 {
	return gamemath.Pulse(GetClock(e).Elapsed, cfg.Effects.PulseSpeed, cfg.Effects.PulseAmount)
}

func drawSprite(screen, img *ebiten.Image, r gamemath.Rect, camX float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(img.Bounds().Dx()), r.H/float64(img.Bounds().Dy()))
	op.GeoM.Translate(r.X-camX, r.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawGlow adds a radial glow centered on (cx, cy).
func drawGlow(screen *ebiten.Image, cx, cy, radius float64, c color.RGBA) {
	if assets.GlowShader == nil || radius <= 0 {
		return
	}
	const centerAlpha = 0.6
	size := int(math.Ceil(radius * 2))
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(cx-radius, cy-radius)
	op.Blend = ebiten.BlendLighter
	op.Uniforms = map[string]any{
		"Center": []float32{float32(cx), float32(cy)},
		"Radius": float32(radius),
		"Color": []float32{
			float32(c.R) / 255 * centerAlpha,
			float32(c.G) / 255 * centerAlpha,
			float32(c.B) / 255 * centerAlpha,
			centerAlpha,
		},
	}
	screen.DrawRectShader(size, size, assets.GlowShader, op)
}

func drawCenteredText(screen *ebiten.Image, s string, face text.Face, x, y, scale float64, c color.RGBA, alpha float32) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, s, face, op)
}
