package render

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/systems"
	"github.com/automoto/dobok/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawAttackArea outlines the hit circle while an attack plays, and the foot
// probe of every player.
func DrawAttackArea(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		motion := components.Motion.Get(e)

		px, py, pw, ph := systems.FootProbe(o.Object)
		probeColor := cfg.Gray
		if motion.IsGrounded {
			probeColor = cfg.Green
		}
		vector.StrokeRect(screen, float32(px), float32(py), float32(pw), float32(ph), 1, probeColor, false)

		if components.Combo.Get(e).Playing == components.PhaseNone {
			return
		}
		cx, cy := systems.AttackPoint(o.Object, motion.Facing)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(cfg.Combat.AttackRange), 1, cfg.Yellow, true)
	})
}
