package render

import (
	"image/color"

	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/systems"
	"github.com/automoto/dobok/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const healthBarHeight = 3

// DrawLevel renders solids, dead zones, goals and dobok pickups.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 28, 255})

	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Gray, false)
	})
	tags.DeadZone.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, cfg.LightRed, false)
	})

	// Locked goals stay gray until the last target falls
	goalColor := cfg.Gray
	if systems.GoalOpen(ecs.World) {
		goalColor = cfg.Green
	}
	tags.Goal.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 2, goalColor, false)
	})
	tags.Dobok.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := cfg.DobokColor(components.DobokPickup.Get(e).Name)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
	})
}

// DrawCharacters renders targets and players as boxes, tinted by state.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	now := systems.Now(ecs.World)

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		c := color.Color(cfg.Red)
		if e.HasComponent(components.Death) {
			c = cfg.Gray
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
		drawHealthBar(screen, e)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		motion := components.Motion.Get(e)
		combo := components.Combo.Get(e)
		hp := components.Health.Get(e)

		// Blink while invulnerable
		if now < hp.InvulnerableUntil && int(now*20)%2 == 0 {
			return
		}

		c := color.Color(cfg.DobokColor(components.Player.Get(e).Dobok))
		switch {
		case motion.IsDashing:
			c = cfg.LightBlue
		case motion.IsRolling:
			c = cfg.Purple
		case combo.Playing != components.PhaseNone:
			c = cfg.Yellow
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)

		// Facing marker
		eyeX := o.X + o.W/2 + motion.Facing.Sign()*o.W/4
		vector.FillRect(screen, float32(eyeX-1), float32(o.Y+4), 2, 2, cfg.DarkBlue, false)
	})
}

func drawHealthBar(screen *ebiten.Image, e *donburi.Entry) {
	hp := components.Health.Get(e)
	if hp.Max <= 0 || hp.Current == hp.Max {
		return
	}
	o := components.Object.Get(e)
	ratio := float32(hp.Current) / float32(hp.Max)
	y := float32(o.Y) - healthBarHeight - 2
	vector.FillRect(screen, float32(o.X), y, float32(o.W), healthBarHeight, cfg.Red, false)
	vector.FillRect(screen, float32(o.X), y, float32(o.W)*ratio, healthBarHeight, cfg.Green, false)
}
