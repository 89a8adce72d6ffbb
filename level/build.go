package level

import (
	"errors"
	"fmt"

	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoSpawn is returned when a level has no PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// Build populates an empty world with the level: collision space, clock,
// ground, dead zones, goals, dobok pickups, targets and the player at the
// default spawn.
func Build(e *ecs.ECS, lvl *Level) (*donburi.Entry, error) {
	spawn, ok := lvl.DefaultSpawn()
	if !ok {
		return nil, fmt.Errorf("build %s: %w", lvl.Name, ErrNoSpawn)
	}

	factory.CreateSpace(e, lvl.Width, lvl.Height, lvl.TileWidth, lvl.TileHeight)
	factory.CreateClock(e)
	factory.CreateLevel(e, components.LevelData{
		Stage:        lvl.Stage,
		Name:         lvl.Title,
		Width:        float64(lvl.Width),
		Height:       float64(lvl.Height),
		TargetsTotal: len(lvl.Targets),
		GoalsTotal:   len(lvl.Goals),
	})

	for _, r := range lvl.SolidRects {
		factory.CreateSolid(e, r.X, r.Y, r.W, r.H)
	}
	for _, r := range lvl.DeadZones {
		factory.CreateDeadZone(e, r.X, r.Y, r.W, r.H)
	}
	for _, r := range lvl.Goals {
		factory.CreateGoal(e, r.X, r.Y, r.W, r.H)
	}
	for _, d := range lvl.Doboks {
		factory.CreateDobokPickup(e, d.Name, d.Bounds.X, d.Bounds.Y, d.Bounds.W, d.Bounds.H)
	}
	for _, t := range lvl.Targets {
		factory.CreateTarget(e, t.Name, t.Bounds.X, t.Bounds.Y, t.Bounds.W, t.Bounds.H, t.Health)
	}

	return factory.CreatePlayer(e, spawn.Pos.X, spawn.Pos.Y), nil
}
