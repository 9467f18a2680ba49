package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Star   = donburi.NewTag().SetName("Star")
)

// Resolv tags for collision
const (
	ResolvPlayer = "Player"
	ResolvStar   = "Star"
)
