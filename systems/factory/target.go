package factory

import (
	"github.com/automoto/dobok/archetypes"
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget creates a damageable training target. health <= 0 uses the
// configured default.
func CreateTarget(ecs *ecs.ECS, name string, x, y, w, h float64, health int) *donburi.Entry {
	if health <= 0 {
		health = cfg.Combat.TargetHealth
	}

	target := archetypes.Target.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDamageable)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Target.SetValue(target, components.TargetData{Name: name})
	components.Health.SetValue(target, components.HealthData{
		Current: health,
		Max:     health,
	})

	return target
}
