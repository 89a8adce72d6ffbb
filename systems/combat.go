package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat handles damage events and keeps health values within their
// valid range.
func UpdateCombat(ecs *ecs.ECS) {
	now := Now(ecs.World)

	// Deliver hit notifications raised by this frame's attacks
	components.AttackLanded.ProcessEvents(ecs.World)

	// 1. Process queued damage events. Collected first since handling removes
	// the component from the entry being iterated.
	var damaged []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		damaged = append(damaged, e)
	}
	for _, e := range damaged {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if e.HasComponent(components.Death) || !e.HasComponent(components.Health) {
			continue
		}
		ApplyHealthDamage(components.Health.Get(e), dmg, now, e.HasComponent(tags.Player))
	}

	// 2. Clamp health ranges (0..Max) and start deaths
	var dying []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}

		if hp.Current == 0 && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	}
	for _, e := range dying {
		startDeathSequence(e, now)
	}
}

// ApplyHealthDamage subtracts damage unless the entity is invulnerable. Fall
// damage ignores invulnerability. Players become invulnerable for
// InvulnerableFor seconds after a hit. Returns whether damage was applied.
func ApplyHealthDamage(hp *components.HealthData, dmg components.DamageEventData, now float64, isPlayer bool) bool {
	if dmg.Source != components.DamageFromFall && now < hp.InvulnerableUntil {
		return false
	}

	hp.Current -= dmg.Amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	if isPlayer {
		hp.InvulnerableUntil = now + cfg.Player.InvulnerableFor
	}
	return true
}

func startDeathSequence(e *donburi.Entry, now float64) {
	delay := cfg.Combat.TargetDeathDelay
	if e.HasComponent(tags.Player) {
		delay = cfg.Player.DeathDelay
	}

	donburi.Add(e, components.Death, &components.DeathData{At: now + delay})

	// Stop movement and drop any running attack or action
	if e.HasComponent(components.Motion) {
		m := components.Motion.Get(e)
		m.VelocityX = 0
		m.VelocityY = 0
		m.IsDashing = false
		m.IsRolling = false
	}
	if e.HasComponent(components.ActionTimers) {
		components.ActionTimers.SetValue(e, components.ActionTimersData{})
	}
	cancelAttack(e)
}
