package systems

import (
	"log"

	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TryAttack starts the next combo stage. The stage is the pending one when a
// chain window is open, otherwise 1. Ignored while a stage plays, while
// rolling, or before the previous stage has finished.
func TryAttack(combo *components.ComboData, m *components.MotionData, now float64) (components.AttackPhase, bool) {
	if combo.Playing != components.PhaseNone || m.IsRolling || !combo.CanAttack {
		return components.PhaseNone, false
	}

	stage := 1
	if combo.InWindow(now) {
		stage = combo.Stage
	}

	combo.CanAttack = false
	combo.WindowOpen = false
	combo.WindowDeadline = 0
	combo.Stage = stage
	combo.Playing = components.PhaseForStage(stage)
	return combo.Playing, true
}

// CompleteAttackPhase handles the end of a stage. Stages 1 and 2 open a chain
// window for the next stage; stage 3 resets the combo. Completions for a
// phase that is no longer playing are dropped.
func CompleteAttackPhase(combo *components.ComboData, phase components.AttackPhase, now float64) {
	if phase == components.PhaseNone || combo.Playing != phase {
		return
	}
	combo.Playing = components.PhaseNone

	if phase.Stage() >= components.MaxComboStage {
		combo.Reset()
		return
	}

	combo.CanAttack = true
	combo.Stage = phase.Stage() + 1
	combo.WindowOpen = true
	combo.WindowDeadline = now + cfg.Combat.PostWindowDuration
}

// LapseComboWindow resets the combo once an open window has passed.
func LapseComboWindow(combo *components.ComboData, now float64) {
	if combo.WindowOpen && now > combo.WindowDeadline {
		combo.Reset()
	}
}

// RegisterEventHandlers subscribes the combo and combat handlers to the
// world's event bus. Call once per world.
func RegisterEventHandlers(w donburi.World) {
	components.AttackPhaseCompleted.Subscribe(w, onAttackPhaseCompleted)
	components.AttackLanded.Subscribe(w, onAttackLanded)
}

func onAttackLanded(w donburi.World, event components.AttackLandedEvent) {
	log.Printf("[combat] %s hit entity %d for %d", event.Phase, event.Target.Id(), event.Damage)
}

func onAttackPhaseCompleted(w donburi.World, event components.AttackPhaseCompletedEvent) {
	if !w.Valid(event.Entity) {
		return
	}
	e := w.Entry(event.Entity)
	if !e.HasComponent(components.Combo) {
		return
	}
	CompleteAttackPhase(components.Combo.Get(e), event.Phase, Now(w))
}

// UpdateCombo delivers completed attack phases and lapses expired windows.
// Runs after UpdateAttackClips.
func UpdateCombo(ecs *ecs.ECS) {
	components.AttackPhaseCompleted.ProcessEvents(ecs.World)

	now := Now(ecs.World)
	components.Combo.Each(ecs.World, func(e *donburi.Entry) {
		LapseComboWindow(components.Combo.Get(e), now)
	})
}

// UpdateAttackClips advances attack clips and raises AttackPhaseCompleted
// once per play-through when a clip crosses the completion threshold.
func UpdateAttackClips(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs.World).Step

	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Animator.Get(e)
		if data.Animator == nil {
			return
		}

		phase := data.Animator.Phase()
		if phase == components.PhaseNone {
			return
		}

		data.Animator.Advance(dt)
		if !data.CompletionSent && data.Animator.Progress() >= cfg.Combat.CompletionThreshold {
			data.CompletionSent = true
			components.AttackPhaseCompleted.Publish(ecs.World, components.AttackPhaseCompletedEvent{
				Entity: e.Entity(),
				Phase:  phase,
			})
		}
	})
}

// playAttack starts the clip for phase. Entities without an animator finish
// the phase on the spot.
func playAttack(e *donburi.Entry, combo *components.ComboData, phase components.AttackPhase, now float64) {
	if e.HasComponent(components.Animator) {
		data := components.Animator.Get(e)
		if data.Animator != nil {
			data.Animator.Play(phase)
			data.CompletionSent = false
			return
		}
	}
	CompleteAttackPhase(combo, phase, now)
}

// cancelAttack stops any playing clip and resets the combo.
func cancelAttack(e *donburi.Entry) {
	if e.HasComponent(components.Animator) {
		if data := components.Animator.Get(e); data.Animator != nil {
			data.Animator.Stop()
			data.CompletionSent = false
		}
	}
	if e.HasComponent(components.Combo) {
		components.Combo.Get(e).Reset()
	}
}
