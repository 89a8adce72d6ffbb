package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Mana int

	// Dobok (uniform) colour, persisted with the save data
	Dobok string

	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()

// TargetData describes a training target loaded from a stage.
type TargetData struct {
	Name string
}

var Target = donburi.NewComponentType[TargetData]()
