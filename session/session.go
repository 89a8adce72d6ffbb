// Package session holds the per-run game state shared by gameplay systems:
// stage progression, pause and game-over state, and player save data.
// A Session is created by the host (demo scene or simulator) and handed to
// the systems that need it.
package session

import (
	"log"

	cfg "github.com/automoto/dobok/config"
)

// State is the top-level game state.
type State int

const (
	Playing State = iota
	Paused
	GameOver
	Victory
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	case Victory:
		return "victory"
	default:
		return "playing"
	}
}

// Session tracks one play-through.
type Session struct {
	state     State
	stage     int
	maxStages int

	// Set once per stage when its targets are all defeated
	stageCleared bool
	// Set by ClearStage when the next stage should be built
	pendingAdvance bool

	store Store
}

// New creates a session at stage 1. store may be nil, in which case Save and
// Load report ErrNoStore.
func New(store Store) *Session {
	maxStages := cfg.Stage.MaxStages
	if maxStages < 1 {
		maxStages = 1
	}
	return &Session{
		state:     Playing,
		stage:     1,
		maxStages: maxStages,
		store:     store,
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Stage() int {
	return s.stage
}

func (s *Session) MaxStages() int {
	return s.maxStages
}

// IsFinalStage reports whether the current stage is the last one.
func (s *Session) IsFinalStage() bool {
	return s.stage >= s.maxStages
}

// IsGameplayActive reports whether gameplay systems should run this frame.
func (s *Session) IsGameplayActive() bool {
	return s.state == Playing
}

// TogglePause switches between Playing and Paused. Other states are left alone.
func (s *Session) TogglePause() {
	switch s.state {
	case Playing:
		s.setState(Paused)
	case Paused:
		s.setState(Playing)
	}
}

// EndGame moves to GameOver.
func (s *Session) EndGame() {
	if s.state == Victory {
		return
	}
	s.setState(GameOver)
}

// StageCleared reports whether the current stage has been cleared.
func (s *Session) StageCleared() bool {
	return s.stageCleared
}

// ClearStage marks the current stage cleared. It fires once per stage: the
// final stage moves the session to Victory, earlier stages request an advance
// that the host picks up with TakeAdvance. Returns false when the stage was
// already cleared.
func (s *Session) ClearStage() bool {
	if s.stageCleared {
		return false
	}
	s.stageCleared = true
	log.Printf("[session] Stage %d cleared", s.stage)

	if s.IsFinalStage() {
		s.setState(Victory)
		return true
	}
	s.pendingAdvance = true
	return true
}

// TakeAdvance consumes a pending stage advance, moving to the next stage.
// The host rebuilds the world for the returned stage.
func (s *Session) TakeAdvance() (int, bool) {
	if !s.pendingAdvance {
		return s.stage, false
	}
	s.pendingAdvance = false
	s.stage++
	s.stageCleared = false
	log.Printf("[session] Advancing to stage %d", s.stage)
	return s.stage, true
}

// Restart returns to stage 1 in the Playing state.
func (s *Session) Restart() {
	s.stage = 1
	s.stageCleared = false
	s.pendingAdvance = false
	s.setState(Playing)
}

// SetStage jumps to a stage, clamped to [1, MaxStages]. Used when continuing
// from save data.
func (s *Session) SetStage(stage int) {
	if stage < 1 {
		stage = 1
	}
	if stage > s.maxStages {
		stage = s.maxStages
	}
	s.stage = stage
	s.stageCleared = false
	s.pendingAdvance = false
}

func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	log.Printf("[session] State %s -> %s", s.state, state)
	s.state = state
}
