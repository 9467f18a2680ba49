package systems

import (
	"log"

	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateViewport applies a pending viewport change. Entering portrait on a
// compact device blocks the session; leaving it returns to Idle and schedules
// a world reset a couple of frames later. Any other change rebuilds at once.
func UpdateViewport(e *ecs.ECS) {
	session := GetSession(e)
	view := GetViewport(e)

	if session.PendingResetFrames > 0 {
		session.PendingResetFrames--
		if session.PendingResetFrames == 0 {
			BuildWorld(e)
		}
	}

	if !view.Changed {
		return
	}
	view.Changed = false

	blocked := gamemath.OrientationBlocked(view.Compact, view.Width, view.Height)
	switch {
	case blocked && session.State != components.SessionBlocked:
		log.Printf("session: %s -> blocked (%.0fx%.0f)", session.State, view.Width, view.Height)
		session.State = components.SessionBlocked
		session.PendingResetFrames = 0
		if !worldBuilt(e) {
			BuildWorld(e)
		}
	case blocked:
		// Still portrait; nothing to rebuild until it clears.
	case session.State == components.SessionBlocked:
		log.Printf("session: blocked -> idle (%.0fx%.0f)", view.Width, view.Height)
		session.State = components.SessionIdle
		resetHint(session)
		session.PendingResetFrames = cfg.Session.ResetDelayFrames
		if session.PendingResetFrames <= 0 {
			BuildWorld(e)
		}
	default:
		BuildWorld(e)
	}
}

// UpdateSession moves Idle to Running on a start request once the
// background is ready.
func UpdateSession(e *ecs.ECS) {
	session := GetSession(e)
	input := getOrCreateInput(e)

	if session.State != components.SessionIdle || !input.StartRequested {
		return
	}
	if !session.BackgroundLoaded || session.PendingResetFrames > 0 {
		return
	}

	log.Printf("session: idle -> running")
	session.State = components.SessionRunning
	resetHint(session)
}

// UpdateHint fades the controls hint while running.
func UpdateHint(e *ecs.ECS) {
	session := GetSession(e)
	if session.Hint == nil {
		return
	}
	alpha, finished := session.Hint.Update(float32(GetClock(e).Delta))
	session.HintAlpha = gamemath.Clamp(float64(alpha), 0, 1)
	if finished {
		session.HintAlpha = 0
		session.Hint = nil
	}
}

func resetHint(session *components.SessionData) {
	session.HintAlpha = 1
	session.Hint = gween.New(1, 0, float32(cfg.Session.HintFadeSeconds), ease.Linear)
}

// WithSessionCheck wraps a system to skip execution unless the session is running.
func WithSessionCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if session := GetSession(e); session.State != components.SessionRunning {
			return
		}
		system(e)
	}
}

// GetSession returns the session singleton, creating an idle one if needed.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{
			State:     components.SessionIdle,
			HintAlpha: 1,
		})
	}
	return components.Session.Get(entry)
}

// GetViewport returns the viewport singleton.
func GetViewport(e *ecs.ECS) *components.ViewportData {
	entry, ok := components.Viewport.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Viewport))
	}
	return components.Viewport.Get(entry)
}

// SetViewport records a new logical screen size. It is applied on the next tick.
func SetViewport(e *ecs.ECS, width, height float64) {
	view := GetViewport(e)
	if view.Width == width && view.Height == height {
		return
	}
	view.Width = width
	view.Height = height
	view.Changed = true
}
