package factory

import (
	"github.com/automoto/dobok/archetypes"
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, data components.LevelData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, data)
	return level
}

// CreateClock creates the session clock singleton at time zero.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		Step: cfg.StepSeconds(),
	})
	return clock
}
