package systems

import (
	"slices"

	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/automoto/starsong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions collects every uncollected star the player strictly
// overlaps. Each pickup advances the melody cursor once, in star order, and
// queues a collection event and a player sprite swap.
// Must run AFTER UpdatePhysics and UpdateObjects.
func UpdateCollisions(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	_, melody, ok := GetLevel(ecs)
	if !ok {
		return
	}

	playerRect := components.Object.Get(playerEntry).Rect()
	clock := GetClock(ecs)
	events := getOrCreateCollectionEvents(ecs)
	effects := getOrCreateEffects(ecs)

	for _, starEntry := range starCandidates(ecs, playerEntry, playerRect) {
		star := components.Star.Get(starEntry)
		if star.Collected {
			continue
		}
		if !gamemath.Overlaps(playerRect, components.Object.Get(starEntry).Rect()) {
			continue
		}

		star.Collected = true
		noteIndex := melody.Cursor
		freq := melody.Next()
		events.Pending = append(events.Pending, components.CollectionEvent{
			StarIndex: star.Index,
			NoteIndex: noteIndex,
			Frequency: freq,
		})
		effects.Push(components.EffectPlayerHit, clock.Elapsed, cfg.Effects.SpriteSwapSeconds)
	}
}

// starCandidates returns the stars that may touch the player, ordered by
// melody position. The space is probed one unit around the player so an
// overlap thinner than a unit across a cell boundary is still found; when the
// player reaches outside the space every star is a candidate.
func starCandidates(ecs *ecs.ECS, playerEntry *donburi.Entry, playerRect gamemath.Rect) []*donburi.Entry {
	var found []*donburi.Entry
	seen := map[donburi.Entity]bool{}
	add := func(entry *donburi.Entry) {
		if entry == nil || !entry.Valid() || seen[entry.Entity()] || !entry.HasComponent(components.Star) {
			return
		}
		seen[entry.Entity()] = true
		found = append(found, entry)
	}

	level, _, _ := GetLevel(ecs)
	if level != nil && level.Bounds.Contains(inflate(playerRect, 1)) {
		obj := components.Object.Get(playerEntry)
		for dy := -1.0; dy <= 1; dy++ {
			for dx := -1.0; dx <= 1; dx++ {
				check := obj.Check(dx, dy, tags.ResolvStar)
				if check == nil {
					continue
				}
				for _, o := range check.ObjectsByTags(tags.ResolvStar) {
					if entry, ok := o.Data.(*donburi.Entry); ok {
						add(entry)
					}
				}
			}
		}
	} else {
		tags.Star.Each(ecs.World, add)
	}

	slices.SortFunc(found, func(a, b *donburi.Entry) int {
		return components.Star.Get(a).Index - components.Star.Get(b).Index
	})
	return found
}

func inflate(r gamemath.Rect, by float64) gamemath.Rect {
	return gamemath.Rect{X: r.X - by, Y: r.Y - by, W: r.W + 2*by, H: r.H + 2*by}
}

func getOrCreateCollectionEvents(ecs *ecs.ECS) *components.CollectionEventsData {
	entry, ok := components.CollectionEvents.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.CollectionEvents))
	}
	return components.CollectionEvents.Get(entry)
}
