package gamemath

// TouchZone is the screen region a touch point falls into.
type TouchZone int

const (
	ZoneNone TouchZone = iota
	ZoneLeft
	ZoneRight
	ZoneJump
)

// TouchZones holds the zone boundaries as fractions of the viewport.
type TouchZones struct {
	LeftMaxX  float64
	RightMinX float64
	JumpMinY  float64
}

// ClassifyTouch returns the zone of a single touch point. A point maps to at
// most one zone; the middle column above JumpMinY maps to none.
func ClassifyTouch(x, y, viewW, viewH float64, z TouchZones) TouchZone {
	switch {
	case x < viewW*z.LeftMaxX:
		return ZoneLeft
	case x > viewW*z.RightMinX:
		return ZoneRight
	case y > viewH*z.JumpMinY:
		return ZoneJump
	}
	return ZoneNone
}
