package components

import "github.com/yohamta/donburi"

// ClockData is the frame clock advanced once per tick.
type ClockData struct {
	Delta   float64 // Seconds covered by the current tick
	Elapsed float64 // Seconds since the scene was created
}

var Clock = donburi.NewComponentType[ClockData]()
