package config

import "image/color"

// Units: distances are pixels, speeds are pixels per second, durations are
// seconds. Vertical velocity is y-up (positive = rising); the physics layer
// converts to screen space.

// MotionConfig contains ground/air movement tuning
type MotionConfig struct {
	MoveSpeed       float64 `yaml:"moveSpeed"`
	JumpImpulse     float64 `yaml:"jumpImpulse"`
	LowGravity      float64 `yaml:"lowGravity"`      // Multiplier while long-jump is held and rising
	HighGravity     float64 `yaml:"highGravity"`     // Default multiplier
	FastFallFactor  float64 `yaml:"fastFallFactor"`  // Applied on top of HighGravity while fast-fall is held
	MaxJumpCharges  int     `yaml:"maxJumpCharges"`  // 2 = double jump
	FootProbeHeight float64 `yaml:"footProbeHeight"` // Height of the grounded probe box below the feet
}

// PhysicsConfig contains integrator configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`      // Base downward acceleration, scaled by the gravity multiplier
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // Terminal downward speed
	TickRate     int     `yaml:"tickRate"`     // Simulation steps per second
}

// DashConfig contains dash action tuning
type DashConfig struct {
	Speed        float64 `yaml:"dashSpeed"`
	Duration     float64 `yaml:"dashDuration"`
	Cooldown     float64 `yaml:"dashCooldown"`
	AllowAirDash bool    `yaml:"allowAirDash"`
}

// RollConfig contains roll action tuning
type RollConfig struct {
	Speed    float64 `yaml:"rollSpeed"`
	Duration float64 `yaml:"rollDuration"`
	Cooldown float64 `yaml:"rollCooldown"` // Counted from the start of the roll
}

// CombatConfig contains combo and hit resolution tuning
type CombatConfig struct {
	AttackRange         float64    `yaml:"attackRange"`         // Radius of the hit circle
	AttackPointOffset   float64    `yaml:"attackPointOffset"`   // Horizontal offset of the hit circle, in facing direction
	AttackDamage        int        `yaml:"attackDamage"`
	AttackCooldown      float64    `yaml:"attackCooldown"`      // Minimum time between two hit resolutions
	PostWindowDuration  float64    `yaml:"postWindowDuration"`  // Chain window after stage 1 and 2
	CompletionThreshold float64    `yaml:"completionThreshold"` // Clip progress that counts as "finished"
	StageDurations      [3]float64 `yaml:"stageDurations"`      // Clip length per combo stage

	TargetHealth     int     `yaml:"targetHealth"`
	TargetDeathDelay float64 `yaml:"targetDeathDelay"` // Seconds a defeated target lingers before removal
}

// PlayerConfig contains player stats and dimensions
type PlayerConfig struct {
	Health          int     `yaml:"health"`
	Mana            int     `yaml:"mana"`
	InvulnerableFor float64 `yaml:"invulnerableFor"` // Invulnerability after taking damage
	FallDamage      int     `yaml:"fallDamage"`      // Damage applied when entering a dead zone
	DeathDelay      float64 `yaml:"deathDelay"`

	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// StageConfig contains stage progression values
type StageConfig struct {
	MaxStages  int     `yaml:"maxStages"`
	ClearDelay float64 `yaml:"clearDelay"` // Pause between the last target falling and the stage clear
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Motion MotionConfig
var Physics PhysicsConfig
var Dash DashConfig
var Roll RollConfig
var Combat CombatConfig
var Player PlayerConfig
var Stage StageConfig

// Debug palette for the demo renderer
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray      = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

// DobokColors tints the player by uniform. Keys are the pickup names used
// in stage files.
var DobokColors = map[string]color.RGBA{
	"white":   White,
	"red":     {R: 255, A: 255},
	"crimson": {R: 128, A: 255},
	"orange":  {R: 255, G: 128, A: 255},
	"blue":    {B: 255, A: 255},
	"sky":     {G: 255, B: 255, A: 255},
	"navy":    {B: 128, A: 255},
	"green":   Green,
	"lime":    {R: 128, G: 255, A: 255},
	"shadow":  {R: 51, G: 51, B: 51, A: 255},
}

// DobokColor returns the tint for a uniform, white when unknown.
func DobokColor(name string) color.RGBA {
	if c, ok := DobokColors[name]; ok {
		return c
	}
	return White
}

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Apply(Defaults())
}

// Defaults returns the built-in tuning.
func Defaults() Tuning {
	return Tuning{
		Motion: MotionConfig{
			MoveSpeed:       150,
			JumpImpulse:     330,
			LowGravity:      1.5,
			HighGravity:     2.5,
			FastFallFactor:  2.0,
			MaxJumpCharges:  2,
			FootProbeHeight: 2,
		},
		Physics: PhysicsConfig{
			Gravity:      400,
			MaxFallSpeed: 600,
			TickRate:     60,
		},
		Dash: DashConfig{
			Speed:        420,
			Duration:     0.2,
			Cooldown:     1.0,
			AllowAirDash: true,
		},
		Roll: RollConfig{
			Speed:    240,
			Duration: 0.4,
			Cooldown: 0.8,
		},
		Combat: CombatConfig{
			AttackRange:         18,
			AttackPointOffset:   16,
			AttackDamage:        25,
			AttackCooldown:      0.2,
			PostWindowDuration:  0.5,
			CompletionThreshold: 0.99,
			StageDurations:      [3]float64{0.35, 0.4, 0.5},
			TargetHealth:        50,
			TargetDeathDelay:    1.0,
		},
		Player: PlayerConfig{
			Health:          100,
			Mana:            50,
			InvulnerableFor: 1.0,
			FallDamage:      10,
			DeathDelay:      0.5,
			CollisionWidth:  16,
			CollisionHeight: 32,
		},
		Stage: StageConfig{
			MaxStages:  2,
			ClearDelay: 0.5,
		},
	}
}
