package gamemath

import (
	"math"
	"math/rand"
	"testing"
)

var testParams = StepParams{
	RunSpeed:   320,
	JumpSpeed:  820,
	Gravity:    1300,
	LevelWidth: 6000,
	GroundY:    450,
}

func groundedBody() Body {
	return Body{X: 100, Y: 390, W: 60, H: 60, OnGround: true}
}

func TestHorizontalSpeedLeftWins(t *testing.T) {
	tests := []struct {
		left, right bool
		want        float64
	}{
		{false, false, 0},
		{true, false, -320},
		{false, true, 320},
		{true, true, -320},
	}
	for _, tt := range tests {
		if got := HorizontalSpeed(tt.left, tt.right, 320); got != tt.want {
			t.Errorf("HorizontalSpeed(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
}

func TestStepSetsVelocityDirectly(t *testing.T) {
	b := groundedBody()
	b.VX = 10000

	b = Step(b, Intent{}, 1.0/60, testParams)
	if b.VX != 0 {
		t.Fatalf("expected vx reset to 0 with no intent, got %v", b.VX)
	}

	b = Step(b, Intent{Right: true}, 1.0/60, testParams)
	if b.VX != 320 {
		t.Fatalf("expected vx 320, got %v", b.VX)
	}
}

func TestStepJumpOnlyFromGround(t *testing.T) {
	b := groundedBody()
	b = Step(b, Intent{Jump: true}, 1.0/60, testParams)
	if b.OnGround {
		t.Fatal("expected player airborne after jump")
	}
	wantVY := -820 + 1300.0/60
	if math.Abs(b.VY-wantVY) > 1e-9 {
		t.Fatalf("vy after jump = %v, want %v", b.VY, wantVY)
	}

	// Holding jump mid-air must not relaunch.
	vy := b.VY
	b = Step(b, Intent{Jump: true}, 1.0/60, testParams)
	if b.VY <= vy {
		t.Fatalf("expected gravity to slow ascent without double jump: %v -> %v", vy, b.VY)
	}
}

func TestStepLandsOnGround(t *testing.T) {
	b := groundedBody()
	b = Step(b, Intent{Jump: true}, 1.0/60, testParams)
	for i := 0; i < 600 && !b.OnGround; i++ {
		b = Step(b, Intent{}, 1.0/60, testParams)
	}
	if !b.OnGround {
		t.Fatal("expected player to land within 10 seconds")
	}
	if b.Y+b.H != testParams.GroundY {
		t.Fatalf("expected feet on ground, y+h = %v", b.Y+b.H)
	}
	if b.VY != 0 {
		t.Fatalf("expected vy 0 on landing, got %v", b.VY)
	}
}

func TestStepClampsToLevel(t *testing.T) {
	b := groundedBody()
	b.X = 2
	b = Step(b, Intent{Left: true}, 1, testParams)
	if b.X != 0 {
		t.Fatalf("expected x clamped to 0, got %v", b.X)
	}

	b.X = testParams.LevelWidth - b.W - 1
	b = Step(b, Intent{Right: true}, 1, testParams)
	if b.X != testParams.LevelWidth-b.W {
		t.Fatalf("expected x clamped to %v, got %v", testParams.LevelWidth-b.W, b.X)
	}
}

func TestStepInvariantsHoldForRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := groundedBody()
	for i := 0; i < 5000; i++ {
		in := Intent{
			Left:  rng.Intn(3) == 0,
			Right: rng.Intn(2) == 0,
			Jump:  rng.Intn(4) == 0,
		}
		dt := rng.Float64() * 0.25
		if i%500 == 0 {
			dt = 0
		}
		b = Step(b, in, dt, testParams)

		if b.Y+b.H > testParams.GroundY {
			t.Fatalf("step %d: y+h = %v exceeds ground %v", i, b.Y+b.H, testParams.GroundY)
		}
		if b.X < 0 || b.X > testParams.LevelWidth-b.W {
			t.Fatalf("step %d: x = %v out of [0, %v]", i, b.X, testParams.LevelWidth-b.W)
		}
	}
}

func TestClampLowerBoundWins(t *testing.T) {
	if got := Clamp(50, 0, -100); got != 0 {
		t.Fatalf("Clamp with inverted bounds = %v, want 0", got)
	}
}
