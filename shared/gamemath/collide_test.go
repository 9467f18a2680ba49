package gamemath

import "testing"

func TestOverlaps(t *testing.T) {
	star := Rect{X: 300, Y: 370, W: 48, H: 48}
	tests := []struct {
		name   string
		player Rect
		want   bool
	}{
		{"inside", Rect{X: 310, Y: 380, W: 20, H: 20}, true},
		{"partial", Rect{X: 280, Y: 400, W: 60, H: 60}, true},
		{"touching right edge", Rect{X: 348, Y: 370, W: 60, H: 60}, false},
		{"touching left edge", Rect{X: 240, Y: 370, W: 60, H: 60}, false},
		{"touching top edge", Rect{X: 300, Y: 310, W: 60, H: 60}, false},
		{"touching bottom edge", Rect{X: 300, Y: 418, W: 60, H: 60}, false},
		{"corner touch", Rect{X: 348, Y: 418, W: 60, H: 60}, false},
		{"apart", Rect{X: 100, Y: 390, W: 60, H: 60}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.player, star); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := Overlaps(star, tt.player); got != tt.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}
	if !outer.Contains(Rect{X: 0, Y: 0, W: 100, H: 100}) {
		t.Fatal("expected rect to contain itself")
	}
	if outer.Contains(Rect{X: 10, Y: -1, W: 10, H: 10}) {
		t.Fatal("expected rect above the top to be outside")
	}
}
