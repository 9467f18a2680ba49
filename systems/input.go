package systems

import (
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// TouchPoint is an active touch in screen coordinates.
type TouchPoint struct {
	X, Y float64
}

// InputSource is the raw device state polled once per tick.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	AnyKeyJustPressed() bool
	// IsGamepadButtonPressed reports whether any gamepad with a standard
	// layout holds btn.
	IsGamepadButtonPressed(btn ebiten.StandardGamepadButton) bool
	AnyGamepadButtonJustPressed() bool
	Touches() []TouchPoint
	AnyTouchJustPressed() bool
}

// NewUpdateInput polls src into the Input component.
// Must run BEFORE UpdateSession and UpdatePlayer in the system order.
func NewUpdateInput(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		view := GetViewport(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if src.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
			for _, btn := range binding.StandardGamepadButtons {
				if src.IsGamepadButtonPressed(btn) {
					input.Current[actionID] = true
				}
			}
		}

		// Each touch maps to at most one action.
		for _, t := range src.Touches() {
			switch gamemath.ClassifyTouch(t.X, t.Y, view.Width, view.Height, touchZones()) {
			case gamemath.ZoneLeft:
				input.Current[cfg.ActionMoveLeft] = true
			case gamemath.ZoneRight:
				input.Current[cfg.ActionMoveRight] = true
			case gamemath.ZoneJump:
				input.Current[cfg.ActionJump] = true
			}
		}

		input.StartRequested = src.AnyKeyJustPressed() ||
			src.AnyGamepadButtonJustPressed() ||
			src.AnyTouchJustPressed()
	}
}

func touchZones() gamemath.TouchZones {
	return gamemath.TouchZones{
		LeftMaxX:  cfg.Input.Touch.LeftMaxX,
		RightMinX: cfg.Input.Touch.RightMinX,
		JumpMinY:  cfg.Input.Touch.JumpMinY,
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// EbitenInput reads the keyboard, gamepads and touch screen through ebiten.
type EbitenInput struct {
	keys       []ebiten.Key
	gamepadIDs []ebiten.GamepadID
	buttons    []ebiten.StandardGamepadButton
	touchIDs   []ebiten.TouchID
	touches    []TouchPoint
}

func (in *EbitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (in *EbitenInput) AnyKeyJustPressed() bool {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	return len(in.keys) > 0
}

func (in *EbitenInput) IsGamepadButtonPressed(btn ebiten.StandardGamepadButton) bool {
	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
	for _, id := range in.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, btn) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) AnyGamepadButtonJustPressed() bool {
	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
	for _, id := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.buttons = inpututil.AppendJustPressedStandardGamepadButtons(id, in.buttons[:0])
		if len(in.buttons) > 0 {
			return true
		}
	}
	return false
}

func (in *EbitenInput) Touches() []TouchPoint {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	in.touches = in.touches[:0]
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.touches = append(in.touches, TouchPoint{X: float64(x), Y: float64(y)})
	}
	return in.touches
}

func (in *EbitenInput) AnyTouchJustPressed() bool {
	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	return len(in.touchIDs) > 0
}
