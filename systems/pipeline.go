package systems

import (
	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddGameplaySystems registers the frame pipeline on a fresh world and
// subscribes its event handlers. input writes this frame's PlayerInput; it
// runs even while paused so the pause action can resume.
func AddGameplaySystems(e *ecs.ECS, sess *session.Session, input ecs.System) {
	RegisterEventHandlers(e.World)

	e.AddSystem(WithGameplayChecks(sess, UpdateClock))
	e.AddSystem(input)
	e.AddSystem(UpdatePause(sess))

	gameplay := []ecs.System{
		UpdatePlayer,
		UpdateActionTimers,
		UpdateAttackClips,
		UpdateCombo,
		UpdateMotion,
		UpdatePhysics,
		UpdateCombat,
		UpdateDeaths(sess),
		UpdateDobokPickups,
		UpdateStageProgress(sess),
		UpdateObjects,
	}
	for _, sys := range gameplay {
		e.AddSystem(WithGameplayChecks(sess, sys))
	}
}

// SnapshotPlayer captures the persisted part of a player for stage.
func SnapshotPlayer(e *donburi.Entry, stage int) session.PlayerData {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	return session.PlayerData{
		Stage:   stage,
		Health:  components.Health.Get(e).Current,
		Mana:    player.Mana,
		Dobok:   player.Dobok,
		PlayerX: obj.X,
		PlayerY: obj.Y,
	}
}

// RestorePlayer applies saved stats to a freshly spawned player. Health is
// clamped to [1, Max] so a save taken at zero health does not start dead.
func RestorePlayer(e *donburi.Entry, data session.PlayerData) {
	hp := components.Health.Get(e)
	hp.Current = max(1, min(data.Health, hp.Max))

	player := components.Player.Get(e)
	player.Mana = data.Mana
	if data.Dobok != "" {
		player.Dobok = data.Dobok
	}
}
