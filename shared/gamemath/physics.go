package gamemath

// Body is the kinematic state of an axis-aligned rectangle.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	OnGround bool
}

// Intent is the per-frame movement request.
type Intent struct {
	Left, Right, Jump bool
}

// StepParams holds the constants that drive a single physics step.
type StepParams struct {
	RunSpeed   float64
	JumpSpeed  float64
	Gravity    float64
	LevelWidth float64
	GroundY    float64
}

// HorizontalSpeed returns the velocity for the held direction.
// Left is checked first, so holding both moves left.
func HorizontalSpeed(left, right bool, speed float64) float64 {
	if left {
		return -speed
	}
	if right {
		return speed
	}
	return 0
}

// ClampX keeps a rectangle of width w inside [0, levelWidth].
func ClampX(x, w, levelWidth float64) float64 {
	return Clamp(x, 0, levelWidth-w)
}

// Clamp returns v limited to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Step advances b by dt seconds: velocity from intent, jump launch,
// gravity, integration, level bounds and ground snap, in that order.
func Step(b Body, in Intent, dt float64, p StepParams) Body {
	b.VX = HorizontalSpeed(in.Left, in.Right, p.RunSpeed)

	if in.Jump && b.OnGround {
		b.VY = -p.JumpSpeed
		b.OnGround = false
	}

	b.VY += p.Gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt

	b.X = ClampX(b.X, b.W, p.LevelWidth)

	// Flat ground spans the whole level, so this is the only place
	// OnGround becomes true.
	if b.Y+b.H > p.GroundY {
		b.Y = p.GroundY - b.H
		b.VY = 0
		b.OnGround = true
	}

	return b
}
