package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning aggregates every runtime-read configuration block. It is the unit
// that is loaded from YAML and installed with Apply.
type Tuning struct {
	Motion  MotionConfig  `yaml:"motion"`
	Physics PhysicsConfig `yaml:"physics"`
	Dash    DashConfig    `yaml:"dash"`
	Roll    RollConfig    `yaml:"roll"`
	Combat  CombatConfig  `yaml:"combat"`
	Player  PlayerConfig  `yaml:"player"`
	Stage   StageConfig   `yaml:"stage"`
}

// Current returns the installed tuning.
func Current() Tuning {
	return Tuning{
		Motion:  Motion,
		Physics: Physics,
		Dash:    Dash,
		Roll:    Roll,
		Combat:  Combat,
		Player:  Player,
		Stage:   Stage,
	}
}

// Apply installs t as the global configuration. Call it between frames only.
func Apply(t Tuning) {
	Motion = t.Motion
	Physics = t.Physics
	Dash = t.Dash
	Roll = t.Roll
	Combat = t.Combat
	Player = t.Player
	Stage = t.Stage
}

// StepSeconds is the length of one simulation step.
func StepSeconds() float64 {
	if Physics.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(Physics.TickRate)
}

// ParseTuning overlays YAML data onto the defaults and validates the result.
// Keys that are absent keep their default value.
func ParseTuning(data []byte) (Tuning, error) {
	t := Defaults()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate reports every out-of-range value, joined.
func (t Tuning) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
	}

	if t.Motion.MoveSpeed < 0 {
		bad("motion.moveSpeed must not be negative")
	}
	if t.Motion.JumpImpulse <= 0 {
		bad("motion.jumpImpulse must be positive")
	}
	if t.Motion.MaxJumpCharges < 1 {
		bad("motion.maxJumpCharges must be at least 1, got %d", t.Motion.MaxJumpCharges)
	}
	if t.Motion.LowGravity < 0 || t.Motion.HighGravity < 0 || t.Motion.FastFallFactor < 0 {
		bad("motion gravity multipliers must not be negative")
	}
	if t.Motion.FootProbeHeight <= 0 {
		bad("motion.footProbeHeight must be positive")
	}
	if t.Physics.TickRate <= 0 {
		bad("physics.tickRate must be positive, got %d", t.Physics.TickRate)
	}
	if t.Dash.Duration <= 0 || t.Dash.Cooldown < 0 {
		bad("dash.dashDuration must be positive and dash.dashCooldown not negative")
	}
	if t.Roll.Duration <= 0 || t.Roll.Cooldown < 0 {
		bad("roll.rollDuration must be positive and roll.rollCooldown not negative")
	}
	if t.Combat.AttackRange <= 0 {
		bad("combat.attackRange must be positive")
	}
	if t.Combat.PostWindowDuration < 0 || t.Combat.AttackCooldown < 0 {
		bad("combat durations must not be negative")
	}
	if t.Combat.CompletionThreshold < 0 || t.Combat.CompletionThreshold > 1 {
		bad("combat.completionThreshold must be within [0,1], got %v", t.Combat.CompletionThreshold)
	}
	for i, d := range t.Combat.StageDurations {
		if d <= 0 {
			bad("combat.stageDurations[%d] must be positive", i)
		}
	}
	if t.Player.Health <= 0 {
		bad("player.health must be positive")
	}
	if t.Player.CollisionWidth <= 0 || t.Player.CollisionHeight <= 0 {
		bad("player collision size must be positive")
	}
	if t.Stage.MaxStages < 1 {
		bad("stage.maxStages must be at least 1")
	}

	return errors.Join(errs...)
}
