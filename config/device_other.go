//go:build !js

package config

// Native builds have no user agent; use STARSONG_COMPACT to force compact mode.
func detectCompact() bool {
	return false
}
