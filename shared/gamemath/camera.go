package gamemath

// FollowCamera moves camera a fraction of the way toward centering targetX
// in a viewport of width viewW, then clamps it to the level.
func FollowCamera(camera, targetX, viewW, levelW, smoothing float64) float64 {
	target := targetX - viewW/2
	camera += (target - camera) * smoothing
	return Clamp(camera, 0, levelW-viewW)
}
