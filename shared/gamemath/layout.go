package gamemath

// LayoutParams holds the level constants used to place entities.
type LayoutParams struct {
	GroundRatio float64

	PlayerX           float64
	PlayerSize        float64
	CompactPlayerSize float64

	StarSize              float64
	CompactStarSize       float64
	FirstStarX            float64
	StarSpacing           float64
	GroundClearance       float64
	MaxHeight             float64
	CompactMaxHeightRatio float64
}

// Layout is the geometry of a freshly built world.
type Layout struct {
	GroundY       float64
	MaxStarHeight float64
	Player        Rect
	Stars         []Rect // one per melody note, same order
}

// BuildLayout computes ground, player spawn and star placement for a viewport.
// Star height above the ground follows its note's pitch rank in melody.
func BuildLayout(viewW, viewH float64, compact bool, melody []float64, p LayoutParams) Layout {
	groundY := viewH * p.GroundRatio

	playerSize, starSize, maxHeight := p.PlayerSize, p.StarSize, p.MaxHeight
	if compact {
		playerSize = p.CompactPlayerSize
		starSize = p.CompactStarSize
		maxHeight = viewH * p.CompactMaxHeightRatio
	}

	l := Layout{
		GroundY:       groundY,
		MaxStarHeight: maxHeight,
		Player: Rect{
			X: p.PlayerX,
			Y: groundY - playerSize,
			W: playerSize,
			H: playerSize,
		},
		Stars: make([]Rect, len(melody)),
	}

	lo, hi := PitchRange(melody)
	for i, freq := range melody {
		h := NoteHeight(freq, lo, hi, maxHeight)
		l.Stars[i] = Rect{
			X: p.FirstStarX + float64(i)*p.StarSpacing,
			Y: groundY - p.GroundClearance - h,
			W: starSize,
			H: starSize,
		}
	}
	return l
}

// OrientationBlocked reports whether a compact device is held in portrait.
func OrientationBlocked(compact bool, viewW, viewH float64) bool {
	return compact && viewH > viewW
}
