package components

import "github.com/yohamta/donburi"

// CollectionEvent records one star pickup. StarIndex is the star's melody
// position; NoteIndex is the cursor position that actually played.
type CollectionEvent struct {
	StarIndex int
	NoteIndex int
	Frequency float64
}

// CollectionEventsData queues pickups for the audio system (singleton component)
type CollectionEventsData struct {
	Pending []CollectionEvent
}

var CollectionEvents = donburi.NewComponentType[CollectionEventsData]()
