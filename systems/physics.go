package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics is the default integrator: it applies gravity scaled by the
// resolver's multiplier and moves bodies through the collision space.
// Motion velocity is y-up; resolv space is y-down.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs.World).Step

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		// Freeze in place during the death delay
		if e.HasComponent(components.Death) || !e.HasComponent(components.Object) {
			return
		}

		motion := components.Motion.Get(e)
		obj := components.Object.Get(e)

		IntegrateMotion(motion, dt)

		if resolveHorizontalCollision(obj.Object, motion.VelocityX*dt) {
			motion.VelocityX = 0
		}

		landed, bumped := resolveVerticalCollision(obj.Object, -motion.VelocityY*dt)
		if landed && motion.VelocityY < 0 {
			motion.VelocityY = 0
		}
		if bumped && motion.VelocityY > 0 {
			motion.VelocityY = 0
		}
		obj.Update()

		if e.HasComponent(components.Player) && checkDeadZone(obj.Object) {
			handleDeadZoneHit(e)
		}
	})
}

// IntegrateMotion applies one step of scaled gravity to the vertical velocity
// and clamps it to the terminal fall speed.
func IntegrateMotion(m *components.MotionData, dt float64) {
	m.VelocityY -= cfg.Physics.Gravity * m.GravityMultiplier * dt
	if m.VelocityY < -cfg.Physics.MaxFallSpeed {
		m.VelocityY = -cfg.Physics.MaxFallSpeed
	}
}
