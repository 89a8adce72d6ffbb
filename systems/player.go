package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer routes this frame's input to the controller: facing and
// movement, jump, dash, fast-fall and long-jump holds, roll, then attack.
// Must run after the input source and before UpdateActionTimers.
func UpdatePlayer(ecs *ecs.ECS) {
	now := Now(ecs.World)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		DispatchPlayerInput(ecs.World, e, now)
	})
}

// DispatchPlayerInput applies one frame of input to a player entity.
func DispatchPlayerInput(w donburi.World, e *donburi.Entry, now float64) {
	input := components.PlayerInput.Get(e)
	motion := components.Motion.Get(e)
	timers := components.ActionTimers.Get(e)
	combo := components.Combo.Get(e)

	axis := InputAxis(input)
	UpdateFacing(motion, axis, combo.Playing != components.PhaseNone)
	MoveTo(motion, axis)

	if input.Action(cfg.ActionJump).JustPressed {
		Jump(motion)
	}
	if input.Action(cfg.ActionDash).JustPressed {
		Dash(motion, timers, now)
	}

	motion.FastFallHeld = input.Action(cfg.ActionFastFall).Pressed
	motion.LongJumpHeld = input.Action(cfg.ActionJump).Pressed

	if input.Action(cfg.ActionRoll).JustPressed {
		Roll(motion, timers, now)
	}

	if input.Action(cfg.ActionAttack).JustPressed {
		if phase, ok := TryAttack(combo, motion, now); ok {
			playAttack(e, combo, phase, now)
			ResolveAttackHits(w, e, phase, now)
		}
	}
}

// InputAxis returns the horizontal axis, falling back to the left/right
// actions when the source did not provide an analog value.
func InputAxis(input *components.PlayerInputData) float64 {
	if input.AxisX != 0 {
		return clampFloat(input.AxisX, -1, 1)
	}
	axis := 0.0
	if input.CurrentInput[cfg.ActionMoveLeft] {
		axis--
	}
	if input.CurrentInput[cfg.ActionMoveRight] {
		axis++
	}
	return axis
}
