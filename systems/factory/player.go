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

// DefaultDobok is the uniform colour of a fresh save.
const DefaultDobok = "white"

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Mana:   cfg.Player.Mana,
		Dobok:  DefaultDobok,
		SpawnX: x,
		SpawnY: y,
	})
	components.Motion.SetValue(player, components.NewMotionData())
	components.ActionTimers.SetValue(player, components.ActionTimersData{})
	components.Combo.SetValue(player, components.NewComboData())
	components.Animator.SetValue(player, components.AnimatorData{
		Animator: components.NewAttackClip(),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
