package gamemath

import (
	"math"
	"testing"
)

func TestFollowCameraSmoothing(t *testing.T) {
	// target = 1000 - 400 = 600; one tenth of the way from 0.
	got := FollowCamera(0, 1000, 800, 6000, 0.1)
	if math.Abs(got-60) > 1e-9 {
		t.Fatalf("FollowCamera = %v, want 60", got)
	}
}

func TestFollowCameraConverges(t *testing.T) {
	c := 0.0
	for i := 0; i < 500; i++ {
		c = FollowCamera(c, 3000, 800, 6000, 0.1)
	}
	if math.Abs(c-2600) > 1e-6 {
		t.Fatalf("expected camera to settle at 2600, got %v", c)
	}
}

func TestFollowCameraStaysInBounds(t *testing.T) {
	for _, x := range []float64{-500, 0, 100, 2999, 5940, 9000} {
		c := 5000.0
		for i := 0; i < 50; i++ {
			c = FollowCamera(c, x, 800, 6000, 0.1)
			if c < 0 || c > 6000-800 {
				t.Fatalf("camera %v out of bounds for player x %v", c, x)
			}
		}
	}
}

func TestFollowCameraViewportWiderThanLevel(t *testing.T) {
	if got := FollowCamera(10, 3000, 7000, 6000, 0.1); got != 0 {
		t.Fatalf("expected camera pinned at 0, got %v", got)
	}
}
