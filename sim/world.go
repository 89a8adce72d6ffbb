// Package sim runs the controller without a window: it owns the stage
// world, advances stages and replays scripted input.
package sim

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/level"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World is one play-through: the session plus the ECS world of the current
// stage. The world is rebuilt whenever the stage changes.
type World struct {
	ECS     *ecs.ECS
	Session *session.Session
	Player  *donburi.Entry

	levels []*level.Level
	input  ecs.System

	// OnStageLoaded runs after every world rebuild, e.g. to add renderers
	OnStageLoaded func(*ecs.ECS)

	// Attacks landed during the last Update, kept across a stage rebuild
	hits []Hit
}

// NewWorld builds the session's current stage. input is the system that
// writes PlayerInput each frame.
func NewWorld(levels []*level.Level, sess *session.Session, input ecs.System) (*World, error) {
	w := &World{
		Session: sess,
		levels:  levels,
		input:   input,
	}
	if err := w.LoadStage(sess.Stage(), nil); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadStage replaces the world with a fresh build of stage. carry, when set,
// is applied to the new player.
func (w *World) LoadStage(stage int, carry *session.PlayerData) error {
	lvl, err := level.ForStage(w.levels, stage)
	if err != nil {
		return fmt.Errorf("load stage: %w", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	player, err := level.Build(e, lvl)
	if err != nil {
		return fmt.Errorf("load stage %d: %w", stage, err)
	}
	systems.AddGameplaySystems(e, w.Session, w.input)
	components.AttackLanded.Subscribe(e.World, w.recordHit)

	if carry != nil {
		systems.RestorePlayer(player, *carry)
	}

	w.ECS = e
	w.Player = player
	log.Printf("[sim] Loaded stage %d (%s), %d targets", stage, lvl.Title, len(lvl.Targets))

	if w.OnStageLoaded != nil {
		w.OnStageLoaded(e)
	}
	return nil
}

// recordHit names the target while it still belongs to the current world.
func (w *World) recordHit(world donburi.World, event components.AttackLandedEvent) {
	name := "?"
	if world.Valid(event.Target) {
		if target := world.Entry(event.Target); target.HasComponent(components.Target) {
			name = components.Target.Get(target).Name
		}
	}
	w.hits = append(w.hits, Hit{Phase: event.Phase.String(), Target: name, Damage: event.Damage})
}

// Update runs one frame and moves to the next stage when the current one
// has been cleared. Progress is saved on every advance.
func (w *World) Update() error {
	w.hits = w.hits[:0]
	w.ECS.Update()

	stage, ok := w.Session.TakeAdvance()
	if !ok {
		return nil
	}

	carry := systems.SnapshotPlayer(w.Player, stage)
	if err := w.Session.Save(carry); err != nil && !errors.Is(err, session.ErrNoStore) {
		log.Printf("[sim] Failed to save progress: %v", err)
	}
	return w.LoadStage(stage, &carry)
}

// Restart begins a new play-through from stage 1.
func (w *World) Restart() error {
	w.hits = nil
	w.Session.Restart()
	return w.LoadStage(w.Session.Stage(), nil)
}

// Continue resumes from saved progress, or starts at stage 1 when nothing
// was saved.
func (w *World) Continue() error {
	data, ok, err := w.Session.Continue()
	if err != nil {
		return err
	}
	if !ok {
		return w.Restart()
	}
	w.hits = nil
	return w.LoadStage(w.Session.Stage(), &data)
}

// Hits returns the attacks that landed during the last Update, including
// the one that cleared the stage when it advanced.
func (w *World) Hits() []Hit {
	return w.hits
}
