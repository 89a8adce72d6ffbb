package components

import (
	cfg "github.com/automoto/dobok/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

//go:generate mockgen -destination=mocks/mock_animator.go -package=mocks github.com/automoto/dobok/components AttackAnimator

// AttackAnimator plays attack clips and reports their progress.
type AttackAnimator interface {
	// Play restarts the clip for phase.
	Play(phase AttackPhase)
	// Phase returns the clip being played, PhaseNone when idle.
	Phase() AttackPhase
	// Progress returns normalized clip time in [0,1].
	Progress() float64
	// Advance moves the clip forward by dt seconds.
	Advance(dt float64)
	// Stop returns the animator to idle.
	Stop()
}

// AnimatorData holds the animator of an entity.
type AnimatorData struct {
	Animator AttackAnimator

	// Fire-once latch for the current play-through
	CompletionSent bool
}

var Animator = donburi.NewComponentType[AnimatorData]()

// AttackClipData is the default AttackAnimator. Clip progress is a linear
// tween over the configured stage duration.
type AttackClipData struct {
	phase    AttackPhase
	tween    *gween.Tween
	progress float64
}

// NewAttackClip returns an idle clip player.
func NewAttackClip() *AttackClipData {
	return &AttackClipData{}
}

func (c *AttackClipData) Play(phase AttackPhase) {
	c.phase = phase
	c.progress = 0
	if phase == PhaseNone {
		c.tween = nil
		return
	}
	c.tween = gween.New(0, 1, float32(cfg.Combat.StageDurations[phase.Stage()-1]), ease.Linear)
}

func (c *AttackClipData) Phase() AttackPhase {
	return c.phase
}

func (c *AttackClipData) Progress() float64 {
	return c.progress
}

func (c *AttackClipData) Advance(dt float64) {
	if c.tween == nil {
		return
	}
	v, finished := c.tween.Update(float32(dt))
	c.progress = float64(v)
	if finished {
		c.progress = 1
	}
}

func (c *AttackClipData) Stop() {
	c.phase = PhaseNone
	c.tween = nil
	c.progress = 0
}
