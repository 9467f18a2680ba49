package gamemath

import (
	"math"
	"testing"
)

var testLayout = LayoutParams{
	GroundRatio:           0.75,
	PlayerX:               100,
	PlayerSize:            60,
	CompactPlayerSize:     72,
	StarSize:              48,
	CompactStarSize:       64,
	FirstStarX:            300,
	StarSpacing:           180,
	GroundClearance:       80,
	MaxHeight:             180,
	CompactMaxHeightRatio: 0.35,
}

func TestBuildLayoutRegularViewport(t *testing.T) {
	l := BuildLayout(800, 600, false, []float64{261.63, 392.0}, testLayout)

	if l.GroundY != 450 {
		t.Fatalf("groundY = %v, want 450", l.GroundY)
	}
	if l.Player.Y+l.Player.H != 450 {
		t.Fatalf("player bottom = %v, want 450", l.Player.Y+l.Player.H)
	}
	if l.Player.X != 100 || l.Player.W != 60 {
		t.Fatalf("unexpected player rect %+v", l.Player)
	}
	if len(l.Stars) != 2 {
		t.Fatalf("expected 2 stars, got %d", len(l.Stars))
	}

	heightAbove := func(r Rect) float64 { return l.GroundY - testLayout.GroundClearance - r.Y }
	if h := heightAbove(l.Stars[0]); h != 0 {
		t.Fatalf("lowest pitch height = %v, want 0", h)
	}
	if h := heightAbove(l.Stars[1]); h != 180 {
		t.Fatalf("highest pitch height = %v, want 180", h)
	}
	if l.Stars[1].X != 480 {
		t.Fatalf("second star x = %v, want 480", l.Stars[1].X)
	}
}

func TestBuildLayoutCompactViewport(t *testing.T) {
	l := BuildLayout(800, 400, true, []float64{100, 200}, testLayout)

	if math.Abs(l.MaxStarHeight-140) > 1e-9 {
		t.Fatalf("compact max height = %v, want 140", l.MaxStarHeight)
	}
	if l.Player.W != 72 || l.Stars[0].W != 64 {
		t.Fatalf("expected compact sizes, got player %v star %v", l.Player.W, l.Stars[0].W)
	}
	if l.Player.Y+l.Player.H != l.GroundY {
		t.Fatal("expected compact player to rest on ground")
	}
}

func TestBuildLayoutEqualFrequencies(t *testing.T) {
	l := BuildLayout(800, 600, false, []float64{440, 440, 440}, testLayout)
	for i, s := range l.Stars {
		if s.Y != l.GroundY-testLayout.GroundClearance {
			t.Fatalf("star %d at y %v, want neutral height", i, s.Y)
		}
	}
}

func TestNoteHeightDegenerateRange(t *testing.T) {
	if h := NoteHeight(440, 440, 440, 180); h != 0 {
		t.Fatalf("NoteHeight with equal range = %v, want 0", h)
	}
}

func TestPitchRange(t *testing.T) {
	lo, hi := PitchRange([]float64{329.63, 261.63, 440, 392})
	if lo != 261.63 || hi != 440 {
		t.Fatalf("PitchRange = (%v, %v), want (261.63, 440)", lo, hi)
	}
	if lo, hi := PitchRange(nil); lo != 0 || hi != 0 {
		t.Fatalf("PitchRange(nil) = (%v, %v), want (0, 0)", lo, hi)
	}
}

func TestOrientationBlocked(t *testing.T) {
	tests := []struct {
		compact bool
		w, h    float64
		want    bool
	}{
		{true, 400, 800, true},
		{true, 800, 400, false},
		{true, 500, 500, false},
		{false, 400, 800, false},
	}
	for _, tt := range tests {
		if got := OrientationBlocked(tt.compact, tt.w, tt.h); got != tt.want {
			t.Errorf("OrientationBlocked(%v, %v, %v) = %v, want %v", tt.compact, tt.w, tt.h, got, tt.want)
		}
	}
}
