package gamemath

import "math"

// Pulse oscillates around 1 by ±amount at speed radians per second.
func Pulse(t, speed, amount float64) float64 {
	return 1 + math.Sin(t*speed)*amount
}
