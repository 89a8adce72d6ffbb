package components

import (
	cfg "github.com/automoto/dobok/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores per-player input state. Input sources (keyboard,
// gamepad, scripts) write CurrentInput and AxisX once per frame.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool // Current frame's Pressed state
	PreviousInput [cfg.ActionCount]bool // Previous frame's Pressed state

	// Horizontal axis in [-1,1]. Sources without an analog axis derive it
	// from the left/right actions.
	AxisX float64
}

// Advance swaps the frame buffers before a source writes the new frame.
func (p *PlayerInputData) Advance() {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = [cfg.ActionCount]bool{}
	p.AxisX = 0
}

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (p *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := p.CurrentInput[id]
	prev := p.PreviousInput[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
