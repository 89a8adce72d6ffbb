package components

import "github.com/yohamta/donburi"

// SequencePhase is the stage of a timed action.
type SequencePhase int

const (
	SequenceIdle SequencePhase = iota
	SequenceActive
	SequenceCooldown
)

func (p SequencePhase) String() string {
	switch p {
	case SequenceActive:
		return "active"
	case SequenceCooldown:
		return "cooldown"
	default:
		return "idle"
	}
}

// TimedSequence is a bounded action advanced once per frame against the
// session clock. Deadline is meaningless while Idle.
type TimedSequence struct {
	Phase    SequencePhase
	Deadline float64
}

// Enter moves the sequence into phase until now+duration.
func (s *TimedSequence) Enter(phase SequencePhase, now, duration float64) {
	s.Phase = phase
	s.Deadline = now + duration
}

// Expired reports whether a running phase has reached its deadline.
func (s *TimedSequence) Expired(now float64) bool {
	return s.Phase != SequenceIdle && now >= s.Deadline
}

// ActionTimersData holds the dash and roll sequences of one character.
type ActionTimersData struct {
	Dash TimedSequence
	Roll TimedSequence

	// Roll cooldown is counted from the roll start and may outlast the roll.
	RollCooldownUntil float64
}

var ActionTimers = donburi.NewComponentType[ActionTimersData]()
