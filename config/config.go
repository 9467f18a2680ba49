package config

import "image/color"

// Config holds window-level defaults.
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (units per second)
	RunSpeed  float64
	JumpSpeed float64

	// Spawn
	SpawnX float64

	// Dimensions
	Size        float64
	CompactSize float64
}

// StarConfig contains collectible star configuration values
type StarConfig struct {
	Size        float64
	CompactSize float64

	// Layout
	FirstX          float64 // X of the first star from level start
	Spacing         float64 // Horizontal distance between consecutive stars
	GroundClearance float64 // Gap between the ground and a lowest-pitch star's top edge

	// Max height above ground for the highest pitch
	MaxHeight             float64 // Fixed value on regular devices
	CompactMaxHeightRatio float64 // Fraction of viewport height on compact devices
}

// WorldConfig contains level geometry configuration values
type WorldConfig struct {
	LevelWidth  float64
	GroundRatio float64 // groundY = viewportH * GroundRatio
	CellSize    int     // resolv space cell size
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity       float64 // units per second squared
	MaxFrameDelta float64 // Upper bound for dt fed into a single tick
}

// CameraConfig contains camera follow configuration values
type CameraConfig struct {
	FollowSmoothing float64
}

// SessionConfig contains session lifecycle configuration values
type SessionConfig struct {
	ResetDelayFrames int     // Frames to wait after an orientation unblock before rebuilding the world
	HintFadeSeconds  float64 // Time for the control hint to fade from 1 to 0
}

// EffectsConfig contains transient visual effect configuration values
type EffectsConfig struct {
	SpriteSwapSeconds float64
	PulseSpeed        float64 // radians per second for the glow pulse
	PulseAmount       float64
	TextPulseSpeed    float64
	TextPulseAmount   float64
}

// UIConfig contains render-related configuration values
type UIConfig struct {
	BackgroundDim   color.RGBA
	GroundColor     color.RGBA
	GroundThickness float32
	ParallaxFactor  float64

	StarGlowRadius   float64
	StarGlowColor    color.RGBA
	PlayerGlowRadius float64
	PlayerGlowColor  color.RGBA

	TextColor       color.RGBA
	TextShadowColor color.RGBA
	PromptFontSize  float64
	HintFontSize    float64
	DedicationSize  float64

	RotatePrompt      string
	StartPrompt       string
	StartPromptTouch  string
	ControlsHint      string
	ControlsHintTouch string

	Dedication    []string
	DedicationY   float64 // fraction of viewport height
	DedicationGap float64
	PromptY       float64 // fraction of viewport height
	HintY         float64
}

// StartText returns the idle start instruction for the device class.
func (u UIConfig) StartText(compact bool) string {
	if compact {
		return u.StartPromptTouch
	}
	return u.StartPrompt
}

// ControlsText returns the controls line for the device class.
func (u UIConfig) ControlsText(compact bool) string {
	if compact {
		return u.ControlsHintTouch
	}
	return u.ControlsHint
}

// DebugConfig contains debug options (overridden by runtime settings)
type DebugConfig struct {
	ShowColliders bool
}

var C Config
var Player PlayerConfig
var Star StarConfig
var World WorldConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Session SessionConfig
var Effects EffectsConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray       = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	Gold       = color.RGBA{R: 255, G: 210, B: 80, A: 255}
	Amber      = color.RGBA{R: 255, G: 190, B: 60, A: 255}
	NightBlue  = color.RGBA{R: 18, G: 22, B: 48, A: 255}
	DimOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 89} // ~35%
	WarmShadow = color.RGBA{R: 255, G: 220, B: 180, A: 230}
	DebugCyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	DebugBlue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

func init() {
	C = Config{
		Title:  "Starsong",
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Player = PlayerConfig{
		RunSpeed:    320,
		JumpSpeed:   820,
		SpawnX:      100,
		Size:        60,
		CompactSize: 72,
	}

	Star = StarConfig{
		Size:                  48,
		CompactSize:           64,
		FirstX:                300,
		Spacing:               180,
		GroundClearance:       80,
		MaxHeight:             180,
		CompactMaxHeightRatio: 0.35,
	}

	World = WorldConfig{
		LevelWidth:  6000,
		GroundRatio: 0.75,
		CellSize:    32,
	}

	Physics = PhysicsConfig{
		Gravity:       1300,
		MaxFrameDelta: 0.25, // a suspended tab resumes without tunnelling
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Session = SessionConfig{
		ResetDelayFrames: 2,
		HintFadeSeconds:  1.25, // 0.8 opacity per second
	}

	Effects = EffectsConfig{
		SpriteSwapSeconds: 0.2,
		PulseSpeed:        2,
		PulseAmount:       0.08,
		TextPulseSpeed:    3,
		TextPulseAmount:   0.05,
	}

	UI = UIConfig{
		BackgroundDim:   DimOverlay,
		GroundColor:     Gray,
		GroundThickness: 4,
		ParallaxFactor:  0.5,

		StarGlowRadius:   80,
		StarGlowColor:    Gold,
		PlayerGlowRadius: 100,
		PlayerGlowColor:  Amber,

		TextColor:       White,
		TextShadowColor: WarmShadow,
		PromptFontSize:  22,
		HintFontSize:    18,
		DedicationSize:  26,

		RotatePrompt:      "Rotate your phone ↻",
		StartPrompt:       "Press any key to start",
		StartPromptTouch:  "Tap to start",
		ControlsHint:      "← move   ● jump   → move",
		ControlsHintTouch: "Left ◀   Jump ●   Right ▶",

		Dedication: []string{
			"Wishing you a twinkling new year, Martha!!",
			"Thank you for being the teacher who gave me whimsy :D",
		},
		DedicationY:   0.4,
		DedicationGap: 40,
		PromptY:       0.3,
		HintY:         0.36,
	}

	Debug = DebugConfig{
		ShowColliders: false,
	}
}
