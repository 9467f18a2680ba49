package components

import "github.com/yohamta/donburi"

// EffectKind identifies a transient render effect
type EffectKind int

const (
	EffectPlayerHit EffectKind = iota // Player shows the hit sprite
)

// TimedEffect is active until the frame clock reaches ExpiresAt (seconds).
type TimedEffect struct {
	Kind      EffectKind
	ExpiresAt float64
}

// EffectsData is a queue of timed effects (singleton component)
type EffectsData struct {
	Queue []TimedEffect
}

// Push starts an effect lasting duration seconds from now.
func (e *EffectsData) Push(kind EffectKind, now, duration float64) {
	e.Queue = append(e.Queue, TimedEffect{Kind: kind, ExpiresAt: now + duration})
}

// Active reports whether any effect of kind has not yet expired at now.
func (e *EffectsData) Active(kind EffectKind, now float64) bool {
	for _, fx := range e.Queue {
		if fx.Kind == kind && now < fx.ExpiresAt {
			return true
		}
	}
	return false
}

// Prune drops expired effects in place.
func (e *EffectsData) Prune(now float64) {
	kept := e.Queue[:0]
	for _, fx := range e.Queue {
		if now < fx.ExpiresAt {
			kept = append(kept, fx)
		}
	}
	e.Queue = kept
}

func (e *EffectsData) Clear() {
	e.Queue = e.Queue[:0]
}

var Effects = donburi.NewComponentType[EffectsData]()
