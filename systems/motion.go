package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion runs the motion resolver for every character. It reads the
// dash/roll flags set by UpdatePlayer this frame, so it must run after it
// and before UpdatePhysics.
func UpdateMotion(ecs *ecs.ECS) {
	space := getSpace(ecs.World)

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		motion := components.Motion.Get(e)

		grounded := false
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			x, y, w, h := FootProbe(obj.Object)
			grounded = ProbeGrounded(space, x, y, w, h)
		}

		ResolveMotion(motion, grounded)
	})
}

// FootProbe returns the probe box under the feet: half the body width,
// centered, FootProbeHeight tall.
func FootProbe(obj *resolv.Object) (x, y, w, h float64) {
	w = obj.W / 2
	return obj.X + obj.W/4, obj.Y + obj.H, w, cfg.Motion.FootProbeHeight
}

// ResolveMotion applies one resolver tick given the grounded probe result:
// jump refill, dash refill on landing, and the gravity multiplier.
func ResolveMotion(m *components.MotionData, grounded bool) {
	m.IsGrounded = grounded

	if grounded && m.VelocityY <= 0 {
		m.JumpChargesRemaining = cfg.Motion.MaxJumpCharges
	}

	// Landing edge
	if grounded && !m.WasGroundedLastTick {
		m.CanDash = true
		m.HasAirDashed = false
	}
	m.WasGroundedLastTick = grounded

	m.GravityMultiplier = GravityMultiplier(m)
}

// GravityMultiplier picks the gravity scale by priority:
// dash, fast-fall, long-jump while rising, default.
func GravityMultiplier(m *components.MotionData) float64 {
	switch {
	case m.IsDashing:
		return 0
	case m.FastFallHeld:
		return cfg.Motion.HighGravity * cfg.Motion.FastFallFactor
	case m.LongJumpHeld && m.VelocityY > 0:
		return cfg.Motion.LowGravity
	default:
		return cfg.Motion.HighGravity
	}
}

// ProbeGrounded reports whether the box overlaps any solid object.
func ProbeGrounded(space *resolv.Space, x, y, w, h float64) bool {
	return len(queryBox(space, x, y, w, h, tags.ResolvSolid)) > 0
}

// MoveTo sets the horizontal velocity from an axis in [-1,1]. Ignored while
// dashing or rolling.
func MoveTo(m *components.MotionData, axis float64) {
	if m.IsDashing || m.IsRolling {
		return
	}
	m.VelocityX = clampFloat(axis, -1, 1) * cfg.Motion.MoveSpeed
}

// Jump consumes a jump charge. Disallowed while rolling or dashing.
func Jump(m *components.MotionData) bool {
	if m.JumpChargesRemaining <= 0 || m.IsRolling || m.IsDashing {
		return false
	}
	m.VelocityY = cfg.Motion.JumpImpulse
	m.JumpChargesRemaining--
	return true
}

// UpdateFacing turns the character toward the axis. Facing is frozen while an
// attack plays or while rolling.
func UpdateFacing(m *components.MotionData, axis float64, attacking bool) {
	if attacking || m.IsRolling {
		return
	}
	if axis > 0 {
		m.Facing = components.FacingRight
	} else if axis < 0 {
		m.Facing = components.FacingLeft
	}
}

// clampFloat constrains a value to the range [min, max]
func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
