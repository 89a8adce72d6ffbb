package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	// Damage is ignored until this session time
	InvulnerableUntil float64
}

var Health = donburi.NewComponentType[HealthData]()
