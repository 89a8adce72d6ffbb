package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AttackPhase identifies which combo clip is playing.
type AttackPhase int

const (
	PhaseNone AttackPhase = iota
	PhaseStage1
	PhaseStage2
	PhaseStage3
)

// MaxComboStage is the terminal stage of the chain.
const MaxComboStage = 3

// PhaseForStage maps a combo stage (1..3) to its phase.
func PhaseForStage(stage int) AttackPhase {
	if stage < 1 || stage > MaxComboStage {
		return PhaseNone
	}
	return AttackPhase(stage)
}

// Stage returns 1..3, or 0 for PhaseNone.
func (p AttackPhase) Stage() int {
	return int(p)
}

func (p AttackPhase) String() string {
	switch p {
	case PhaseStage1:
		return "attack1"
	case PhaseStage2:
		return "attack2"
	case PhaseStage3:
		return "attack3"
	default:
		return "none"
	}
}

// ComboData tracks the three-stage combo of one character.
type ComboData struct {
	Stage     int // Stage played by the next accepted attack (1..3)
	CanAttack bool

	WindowOpen     bool
	WindowDeadline float64

	Playing AttackPhase

	// Earliest time the next hit resolution may run
	NextHitAt float64
}

// NewComboData returns the reset combo state.
func NewComboData() ComboData {
	return ComboData{
		Stage:     1,
		CanAttack: true,
	}
}

// Reset returns the combo to stage 1 with no open window. NextHitAt is kept.
func (c *ComboData) Reset() {
	c.Stage = 1
	c.CanAttack = true
	c.WindowOpen = false
	c.WindowDeadline = 0
	c.Playing = PhaseNone
}

// InWindow reports whether a chain window is open at now. The deadline
// itself is still inside the window.
func (c *ComboData) InWindow(now float64) bool {
	return c.WindowOpen && now <= c.WindowDeadline
}

var Combo = donburi.NewComponentType[ComboData]()

// AttackPhaseCompletedEvent is raised once per play-through when an attack
// clip reaches its completion threshold.
type AttackPhaseCompletedEvent struct {
	Entity donburi.Entity
	Phase  AttackPhase
}

var AttackPhaseCompleted = events.NewEventType[AttackPhaseCompletedEvent]()

// AttackLandedEvent is raised for every target hit by a damage resolution.
type AttackLandedEvent struct {
	Attacker donburi.Entity
	Target   donburi.Entity
	Phase    AttackPhase
	Damage   int
}

var AttackLanded = events.NewEventType[AttackLandedEvent]()
