package components

import (
	cfg "github.com/automoto/dobok/config"
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction a character looks at.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// MotionData is the per-character motion state. VelocityY is y-up.
type MotionData struct {
	VelocityX float64
	VelocityY float64

	IsGrounded          bool
	WasGroundedLastTick bool

	JumpChargesRemaining int
	CanDash              bool
	HasAirDashed         bool
	IsDashing            bool
	IsRolling            bool

	GravityMultiplier float64
	Facing            Facing

	// Held inputs consumed by the motion resolver
	FastFallHeld bool
	LongJumpHeld bool
}

// NewMotionData returns the spawn state.
func NewMotionData() MotionData {
	return MotionData{
		JumpChargesRemaining: cfg.Motion.MaxJumpCharges,
		CanDash:              true,
		GravityMultiplier:    cfg.Motion.HighGravity,
		Facing:               FacingRight,
	}
}

var Motion = donburi.NewComponentType[MotionData]()
