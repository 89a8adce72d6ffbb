package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Target   = donburi.NewTag().SetName("Target")
	Solid    = donburi.NewTag().SetName("Solid")
	DeadZone = donburi.NewTag().SetName("DeadZone")
	Goal     = donburi.NewTag().SetName("Goal")
	Dobok    = donburi.NewTag().SetName("Dobok")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvDamageable = "damageable"
	ResolvPlayer     = "Player"
	ResolvDeadZone   = "deadzone"
	ResolvProbe      = "probe"
	ResolvGoal       = "goal"
	ResolvDobok      = "dobok"
)
