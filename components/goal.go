package components

import "github.com/yohamta/donburi"

// GoalData marks a stage exit. Reaching it clears the stage once every
// target is down.
type GoalData struct {
	Reached bool
}

var Goal = donburi.NewComponentType[GoalData]()

// DobokPickupData is a uniform on offer in the stage. Taking one removes
// the others.
type DobokPickupData struct {
	Name string
}

var DobokPickup = donburi.NewComponentType[DobokPickupData]()
