package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause action.
// This system should run AFTER the input source but BEFORE gameplay systems.
func UpdatePause(sess *session.Session) ecs.System {
	return func(ecs *ecs.ECS) {
		pressed := false
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			if components.PlayerInput.Get(e).Action(cfg.ActionPause).JustPressed {
				pressed = true
			}
		})
		if pressed {
			sess.TogglePause()
		}
	}
}

// WithGameplayChecks wraps a system to skip execution unless the session is
// actively playing (not paused, not over).
func WithGameplayChecks(sess *session.Session, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !sess.IsGameplayActive() {
			return
		}
		system(e)
	}
}
