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

// UpdateDeaths resolves finished death sequences: targets are removed from
// the world, a dead player ends the game.
func UpdateDeaths(sess *session.Session) ecs.System {
	return func(ecs *ecs.ECS) {
		now := Now(ecs.World)

		var finished []*donburi.Entry
		components.Death.Each(ecs.World, func(e *donburi.Entry) {
			if now >= components.Death.Get(e).At {
				finished = append(finished, e)
			}
		})

		for _, e := range finished {
			if e.HasComponent(tags.Player) {
				log.Printf("[death] Player defeated at stage %d", sess.Stage())
				sess.EndGame()
				continue
			}
			if e.HasComponent(components.Target) {
				log.Printf("[death] Target %q defeated", components.Target.Get(e).Name)
			}
			removeEntity(ecs.World, e)
		}
	}
}

func removeEntity(w donburi.World, e *donburi.Entry) {
	if space := getSpace(w); space != nil && e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

// handleDeadZoneHit applies fall damage and puts the player back at spawn
func handleDeadZoneHit(e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	QueueDamage(e, cfg.Player.FallDamage, components.DamageFromFall)

	player := components.Player.Get(e)
	RespawnPlayer(e, player.SpawnX, player.SpawnY)
}

// RespawnPlayer moves the player to (x, y) with motion, actions and combo
// reset. Health is kept.
func RespawnPlayer(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	obj.Update()

	motion := components.Motion.Get(e)
	facing := motion.Facing
	*motion = components.NewMotionData()
	motion.Facing = facing

	if e.HasComponent(components.ActionTimers) {
		components.ActionTimers.SetValue(e, components.ActionTimersData{})
	}
	cancelAttack(e)
}
