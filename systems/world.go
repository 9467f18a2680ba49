package systems

import (
	"log"
	"math"

	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/automoto/starsong/systems/factory"
	"github.com/automoto/starsong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayoutParams collects the world builder constants from config.
func LayoutParams() gamemath.LayoutParams {
	return gamemath.LayoutParams{
		GroundRatio:           cfg.World.GroundRatio,
		PlayerX:               cfg.Player.SpawnX,
		PlayerSize:            cfg.Player.Size,
		CompactPlayerSize:     cfg.Player.CompactSize,
		StarSize:              cfg.Star.Size,
		CompactStarSize:       cfg.Star.CompactSize,
		FirstStarX:            cfg.Star.FirstX,
		StarSpacing:           cfg.Star.Spacing,
		GroundClearance:       cfg.Star.GroundClearance,
		MaxHeight:             cfg.Star.MaxHeight,
		CompactMaxHeightRatio: cfg.Star.CompactMaxHeightRatio,
	}
}

// BuildWorld lays the level out for the current viewport. The player goes
// back to the spawn point, every star is uncollected and the melody cursor,
// camera and pending effects start over.
func BuildWorld(e *ecs.ECS) {
	view := GetViewport(e)
	levelEntry := getOrCreateLevel(e)
	level := components.Level.Get(levelEntry)
	melody := components.Melody.Get(levelEntry)

	layout := gamemath.BuildLayout(view.Width, view.Height, view.Compact, melody.Notes, LayoutParams())

	clearWorld(e)

	spaceHeight := math.Max(view.Height, 1)
	spaceEntry := factory.CreateSpace(e, level.Width, spaceHeight)
	space := components.Space.Get(spaceEntry)
	factory.CreatePlayer(e, space, layout.Player)
	for i, r := range layout.Stars {
		factory.CreateStar(e, space, r, i, melody.Notes[i])
	}

	level.Bounds = factory.SpaceBounds(level.Width, spaceHeight)
	level.GroundY = layout.GroundY
	level.Builds++
	melody.Reset()

	getOrCreateCamera(e).X = 0
	getOrCreateEffects(e).Clear()
	events := getOrCreateCollectionEvents(e)
	events.Pending = events.Pending[:0]

	log.Printf("world: built %d stars for %.0fx%.0f (compact=%v, groundY=%.1f)",
		len(layout.Stars), view.Width, view.Height, view.Compact, layout.GroundY)
}

// clearWorld removes the player, the stars and the collision space.
func clearWorld(e *ecs.ECS) {
	var stale []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	tags.Star.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	components.Space.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		e.World.Remove(entry.Entity())
	}
}

func worldBuilt(e *ecs.ECS) bool {
	entry, ok := components.Level.First(e.World)
	return ok && components.Level.Get(entry).Builds > 0
}

func getOrCreateLevel(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Level.First(e.World)
	if !ok {
		entry = factory.CreateLevel(e, cfg.Melody)
	}
	return entry
}

// GetLevel returns the level geometry and melody, if the level exists.
func GetLevel(e *ecs.ECS) (*components.LevelData, *components.MelodyData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return components.Level.Get(entry), components.Melody.Get(entry), true
}
