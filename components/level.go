package components

import (
	"github.com/yohamta/donburi"
)

// LevelData describes the loaded stage.
type LevelData struct {
	Stage  int
	Name   string
	Width  float64
	Height float64

	// TargetsTotal is the number of targets spawned for this stage
	TargetsTotal int

	// GoalsTotal is the number of exits; zero clears on the last target
	GoalsTotal int

	// Time the stage counts as cleared, set once the last target is down
	ClearAt float64
}

var Level = donburi.NewComponentType[LevelData]()
