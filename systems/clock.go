package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the session clock by one fixed step.
// Must run first in the system order.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs.World)
	clock.Step = cfg.StepSeconds()
	clock.Now += clock.Step
	clock.Tick++
}

// GetOrCreateClock returns the clock singleton, creating it at time zero if needed
func GetOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{Step: cfg.StepSeconds()})
	}
	return components.Clock.Get(entry)
}

// Now returns the current session time in seconds
func Now(w donburi.World) float64 {
	return GetOrCreateClock(w).Now
}
