package systems

import (
	"testing"

	cfg "github.com/automoto/starsong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type stubInput struct {
	held       map[ebiten.Key]bool
	buttons    map[ebiten.StandardGamepadButton]bool
	touches    []TouchPoint
	keyDown    bool
	buttonDown bool
	tapDown    bool
}

func (s *stubInput) IsKeyPressed(k ebiten.Key) bool { return s.held[k] }
func (s *stubInput) AnyKeyJustPressed() bool        { return s.keyDown }
func (s *stubInput) IsGamepadButtonPressed(b ebiten.StandardGamepadButton) bool {
	return s.buttons[b]
}
func (s *stubInput) AnyGamepadButtonJustPressed() bool { return s.buttonDown }
func (s *stubInput) Touches() []TouchPoint             { return s.touches }
func (s *stubInput) AnyTouchJustPressed() bool         { return s.tapDown }

func newInputWorld(w, h float64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	SetViewport(e, w, h)
	return e
}

func TestUpdateInputKeyboard(t *testing.T) {
	e := newInputWorld(800, 400)
	src := &stubInput{held: map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true}}
	update := NewUpdateInput(src)

	update(e)
	input := getOrCreateInput(e)
	if !input.Current[cfg.ActionMoveLeft] || !input.Current[cfg.ActionJump] || input.Current[cfg.ActionMoveRight] {
		t.Errorf("actions = %v, want left and jump", input.Current)
	}
	if !GetAction(input, cfg.ActionJump).JustPressed {
		t.Error("jump not just pressed on the first frame")
	}
	if input.StartRequested {
		t.Error("held keys requested a start without a key press")
	}

	update(e)
	if GetAction(input, cfg.ActionJump).JustPressed || !GetAction(input, cfg.ActionJump).Pressed {
		t.Errorf("jump state on second frame = %+v", GetAction(input, cfg.ActionJump))
	}

	src.held = map[ebiten.Key]bool{}
	update(e)
	if !GetAction(input, cfg.ActionJump).JustReleased {
		t.Error("jump not released")
	}
}

func TestUpdateInputTouchZones(t *testing.T) {
	e := newInputWorld(800, 400)
	src := &stubInput{
		touches: []TouchPoint{
			{X: 100, Y: 390}, // left column wins over the jump row
			{X: 400, Y: 100}, // middle top: nothing
		},
		tapDown: true,
	}
	NewUpdateInput(src)(e)

	input := getOrCreateInput(e)
	want := [cfg.ActionCount]bool{cfg.ActionMoveLeft: true}
	if input.Current != want {
		t.Errorf("actions = %v, want %v", input.Current, want)
	}
	if !input.StartRequested {
		t.Error("tap did not request a start")
	}

	src.touches = []TouchPoint{{X: 400, Y: 300}, {X: 700, Y: 10}}
	NewUpdateInput(src)(e)
	want = [cfg.ActionCount]bool{cfg.ActionJump: true, cfg.ActionMoveRight: true}
	if input.Current != want {
		t.Errorf("actions = %v, want %v", input.Current, want)
	}
}

func TestUpdateInputGamepad(t *testing.T) {
	e := newInputWorld(800, 400)
	src := &stubInput{
		buttons: map[ebiten.StandardGamepadButton]bool{
			ebiten.StandardGamepadButtonLeftRight:   true,
			ebiten.StandardGamepadButtonRightBottom: true,
		},
		buttonDown: true,
	}
	NewUpdateInput(src)(e)

	input := getOrCreateInput(e)
	want := [cfg.ActionCount]bool{cfg.ActionMoveRight: true, cfg.ActionJump: true}
	if input.Current != want {
		t.Errorf("actions = %v, want %v", input.Current, want)
	}
	if !input.StartRequested {
		t.Error("button press did not request a start")
	}

	src.buttons = map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonLeftLeft: true}
	src.buttonDown = false
	NewUpdateInput(src)(e)
	want = [cfg.ActionCount]bool{cfg.ActionMoveLeft: true}
	if input.Current != want || input.StartRequested {
		t.Errorf("actions = %v start = %v, want left without a start", input.Current, input.StartRequested)
	}
}
