package components

import "github.com/yohamta/donburi"

// ViewportData tracks the host's logical screen size.
type ViewportData struct {
	Width   float64
	Height  float64
	Compact bool // Touch-first device classification
	Changed bool // Set by the host, cleared once the change is applied
}

var Viewport = donburi.NewComponentType[ViewportData]()
