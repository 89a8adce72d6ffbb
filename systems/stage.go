package systems

import (
	"log"

	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStageProgress clears the stage. A stage with a goal clears when the
// player reaches it with every target down. A stage without one clears
// ClearDelay after its last target falls.
func UpdateStageProgress(sess *session.Session) ecs.System {
	return func(ecs *ecs.ECS) {
		levelEntry, ok := components.Level.First(ecs.World)
		if !ok || sess.StageCleared() {
			return
		}
		level := components.Level.Get(levelEntry)

		if level.GoalsTotal > 0 {
			if GoalOpen(ecs.World) && reachGoal(ecs.World) {
				log.Printf("[stage] Goal reached on stage %d", level.Stage)
				sess.ClearStage()
			}
			return
		}

		if level.TargetsTotal == 0 {
			return
		}

		if TargetsRemaining(ecs.World) > 0 {
			level.ClearAt = 0
			return
		}

		now := Now(ecs.World)
		if level.ClearAt == 0 {
			level.ClearAt = now + cfg.Stage.ClearDelay
		}
		if now >= level.ClearAt {
			sess.ClearStage()
		}
	}
}

// reachGoal marks and reports a goal the living player overlaps.
func reachGoal(w donburi.World) bool {
	playerEntry, ok := tags.Player.First(w)
	if !ok || playerEntry.HasComponent(components.Death) {
		return false
	}

	for _, o := range touching(components.Object.Get(playerEntry).Object, tags.ResolvGoal) {
		goalEntry, ok := o.Data.(*donburi.Entry)
		if !ok || !goalEntry.HasComponent(components.Goal) {
			continue
		}
		components.Goal.Get(goalEntry).Reached = true
		return true
	}
	return false
}

// GoalOpen reports whether the stage exit accepts the player.
func GoalOpen(w donburi.World) bool {
	return TargetsRemaining(w) == 0
}

// TargetsRemaining counts targets that are not dying or removed.
func TargetsRemaining(w donburi.World) int {
	n := 0
	components.Target.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			n++
		}
	})
	return n
}
