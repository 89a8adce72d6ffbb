package factory

import (
	"github.com/automoto/dobok/archetypes"
	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoal creates a stage exit trigger
func CreateGoal(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return goal
}

// CreateDobokPickup places a uniform the player can take by touching it
func CreateDobokPickup(ecs *ecs.ECS, name string, x, y, w, h float64) *donburi.Entry {
	pickup := archetypes.DobokPickup.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDobok)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = pickup

	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	components.DobokPickup.SetValue(pickup, components.DobokPickupData{Name: name})
	addToSpace(ecs, obj)

	return pickup
}
