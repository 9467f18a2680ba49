package systems

import (
	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/automoto/starsong/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the held actions into the player's movement intent.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)

	player.Intent = gamemath.Intent{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		Jump:  GetAction(input, cfg.ActionJump).Pressed,
	}
}

// UpdatePhysics advances the player by one clock delta.
func UpdatePhysics(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	level, _, ok := GetLevel(ecs)
	if !ok {
		return
	}

	obj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	body := gamemath.Step(gamemath.Body{
		X:        obj.X,
		Y:        obj.Y,
		W:        obj.W,
		H:        obj.H,
		VX:       physics.SpeedX,
		VY:       physics.SpeedY,
		OnGround: physics.OnGround,
	}, player.Intent, GetClock(ecs).Delta, gamemath.StepParams{
		RunSpeed:   cfg.Player.RunSpeed,
		JumpSpeed:  cfg.Player.JumpSpeed,
		Gravity:    cfg.Physics.Gravity,
		LevelWidth: level.Width,
		GroundY:    level.GroundY,
	})

	obj.X, obj.Y = body.X, body.Y
	physics.SpeedX, physics.SpeedY = body.VX, body.VY
	physics.OnGround = body.OnGround
}
