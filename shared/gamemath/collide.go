package gamemath

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b share a region of positive area.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Contains reports whether r lies entirely inside outer.
func (outer Rect) Contains(r Rect) bool {
	return r.X >= outer.X &&
		r.Y >= outer.Y &&
		r.X+r.W <= outer.X+outer.W &&
		r.Y+r.H <= outer.Y+outer.H
}
