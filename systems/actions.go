package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Dash starts a dash in the facing direction. Airborne dashes are limited to
// one per airtime and can be disabled entirely.
func Dash(m *components.MotionData, timers *components.ActionTimersData, now float64) bool {
	if m.IsDashing || !m.CanDash || m.IsRolling {
		return false
	}

	// IsGrounded lags a tick behind; a jump this frame already left the ground
	if !m.IsGrounded || m.VelocityY > 0 {
		if !cfg.Dash.AllowAirDash || m.HasAirDashed {
			return false
		}
		m.HasAirDashed = true
	}

	m.IsDashing = true
	m.CanDash = false
	m.VelocityX = m.Facing.Sign() * cfg.Dash.Speed
	timers.Dash.Enter(components.SequenceActive, now, cfg.Dash.Duration)
	return true
}

// Roll starts a roll in the facing direction. The roll cooldown counts from
// the start of the roll.
func Roll(m *components.MotionData, timers *components.ActionTimersData, now float64) bool {
	if m.IsRolling || now < timers.RollCooldownUntil || m.IsDashing {
		return false
	}

	m.IsRolling = true
	m.VelocityX = m.Facing.Sign() * cfg.Roll.Speed
	timers.RollCooldownUntil = now + cfg.Roll.Cooldown
	timers.Roll.Enter(components.SequenceActive, now, cfg.Roll.Duration)
	return true
}

// UpdateActionTimers expires dash and roll phases against the session clock.
func UpdateActionTimers(ecs *ecs.ECS) {
	now := Now(ecs.World)

	components.ActionTimers.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Motion) {
			return
		}
		AdvanceActionTimers(components.Motion.Get(e), components.ActionTimers.Get(e), now)
	})
}

// AdvanceActionTimers moves expired phases forward. Phase changes are chained
// from the previous deadline, so a long frame can pass several phases.
func AdvanceActionTimers(m *components.MotionData, timers *components.ActionTimersData, now float64) {
	for timers.Dash.Expired(now) {
		switch timers.Dash.Phase {
		case components.SequenceActive:
			m.IsDashing = false
			timers.Dash.Enter(components.SequenceCooldown, timers.Dash.Deadline, cfg.Dash.Cooldown)
		case components.SequenceCooldown:
			m.CanDash = true
			timers.Dash.Phase = components.SequenceIdle
		}
	}

	for timers.Roll.Expired(now) {
		switch timers.Roll.Phase {
		case components.SequenceActive:
			m.VelocityX = 0
			m.IsRolling = false
			if timers.RollCooldownUntil > timers.Roll.Deadline {
				timers.Roll.Phase = components.SequenceCooldown
				timers.Roll.Deadline = timers.RollCooldownUntil
			} else {
				timers.Roll.Phase = components.SequenceIdle
			}
		case components.SequenceCooldown:
			timers.Roll.Phase = components.SequenceIdle
		}
	}
}
