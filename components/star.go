package components

import "github.com/yohamta/donburi"

// StarData is a collectible paired with one melody position.
type StarData struct {
	Index     int
	Frequency float64
	Collected bool
}

var Star = donburi.NewComponentType[StarData]()
