package components

import (
	"testing"

	cfg "github.com/automoto/dobok/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackClip_ProgressReachesOne(t *testing.T) {
	clip := NewAttackClip()
	assert.Equal(t, PhaseNone, clip.Phase())

	clip.Play(PhaseStage2)
	require.Equal(t, PhaseStage2, clip.Phase())
	assert.Zero(t, clip.Progress())

	half := cfg.Combat.StageDurations[1] / 2
	clip.Advance(half)
	assert.InDelta(t, 0.5, clip.Progress(), 0.01)

	clip.Advance(half * 4)
	assert.Equal(t, 1.0, clip.Progress())

	clip.Play(PhaseStage1)
	assert.Zero(t, clip.Progress(), "replay restarts the clip")

	clip.Stop()
	assert.Equal(t, PhaseNone, clip.Phase())
	clip.Advance(1)
	assert.Zero(t, clip.Progress())
}

func TestComboData_ResetAndWindow(t *testing.T) {
	c := NewComboData()
	assert.Equal(t, 1, c.Stage)
	assert.True(t, c.CanAttack)
	assert.False(t, c.InWindow(0))

	c.Stage = 3
	c.WindowOpen = true
	c.WindowDeadline = 2
	c.NextHitAt = 1.5
	assert.True(t, c.InWindow(2), "deadline is inclusive")
	assert.False(t, c.InWindow(2.01))

	c.Reset()
	assert.Equal(t, 1, c.Stage)
	assert.False(t, c.WindowOpen)
	assert.Equal(t, PhaseNone, c.Playing)
	assert.Equal(t, 1.5, c.NextHitAt)
}

func TestPhaseForStage(t *testing.T) {
	assert.Equal(t, PhaseStage1, PhaseForStage(1))
	assert.Equal(t, PhaseStage3, PhaseForStage(3))
	assert.Equal(t, PhaseNone, PhaseForStage(0))
	assert.Equal(t, PhaseNone, PhaseForStage(4))
	assert.Equal(t, 2, PhaseStage2.Stage())
}

func TestTimedSequence(t *testing.T) {
	var s TimedSequence
	assert.False(t, s.Expired(100), "idle never expires")

	s.Enter(SequenceActive, 1, 0.5)
	assert.False(t, s.Expired(1.4))
	assert.True(t, s.Expired(1.5))
}

func TestPlayerInputData_Edges(t *testing.T) {
	var in PlayerInputData
	in.CurrentInput[cfg.ActionJump] = true
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionJump))

	in.Advance()
	in.CurrentInput[cfg.ActionJump] = true
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionJump))

	in.Advance()
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionJump))
}

func TestNewMotionData(t *testing.T) {
	m := NewMotionData()
	assert.Equal(t, cfg.Motion.MaxJumpCharges, m.JumpChargesRemaining)
	assert.True(t, m.CanDash)
	assert.Equal(t, FacingRight, m.Facing)
	assert.Equal(t, 1.0, m.Facing.Sign())
	assert.Equal(t, -1.0, FacingLeft.Sign())
}
