package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// The entity is resolved (removed or respawned) once the clock passes At.
type DeathData struct {
	At float64
}

var Death = donburi.NewComponentType[DeathData]()
