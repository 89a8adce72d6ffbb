package systems

import (
	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// AttackPoint returns the center of the hit circle: the body center pushed
// AttackPointOffset toward the facing direction.
func AttackPoint(obj *resolv.Object, facing components.Facing) (float64, float64) {
	cx := obj.X + obj.W/2 + facing.Sign()*cfg.Combat.AttackPointOffset
	cy := obj.Y + obj.H/2
	return cx, cy
}

// ResolveAttackHits runs one hit resolution for attacker. Every living damageable
// entity inside the hit circle receives the attack damage once. Resolutions
// closer together than AttackCooldown are skipped. Returns the number of
// targets hit.
func ResolveAttackHits(w donburi.World, attacker *donburi.Entry, phase components.AttackPhase, now float64) int {
	if !attacker.HasComponent(components.Object) || !attacker.HasComponent(components.Combo) {
		return 0
	}
	combo := components.Combo.Get(attacker)
	if now < combo.NextHitAt {
		return 0
	}
	combo.NextHitAt = now + cfg.Combat.AttackCooldown

	facing := components.FacingRight
	if attacker.HasComponent(components.Motion) {
		facing = components.Motion.Get(attacker).Facing
	}
	obj := components.Object.Get(attacker)
	cx, cy := AttackPoint(obj.Object, facing)

	seen := make(map[donburi.Entity]struct{})
	hits := 0
	for _, o := range QueryCircle(getSpace(w), cx, cy, cfg.Combat.AttackRange, tags.ResolvDamageable) {
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() || target.Entity() == attacker.Entity() || target.HasComponent(components.Death) {
			continue
		}
		if _, dup := seen[target.Entity()]; dup {
			continue
		}
		seen[target.Entity()] = struct{}{}

		damageTargetFor(target).ApplyDamage(cfg.Combat.AttackDamage)
		hits++

		components.AttackLanded.Publish(w, components.AttackLandedEvent{
			Attacker: attacker.Entity(),
			Target:   target.Entity(),
			Phase:    phase,
			Damage:   cfg.Combat.AttackDamage,
		})
	}
	return hits
}

// damageTargetFor returns the entity's custom damage target, or one that
// queues a DamageEvent for UpdateCombat.
func damageTargetFor(e *donburi.Entry) components.DamageTarget {
	if e.HasComponent(components.Damageable) {
		if t := components.Damageable.Get(e).Target; t != nil {
			return t
		}
	}
	return queuedDamage{entry: e}
}

// queuedDamage adds damage to the entity's pending DamageEvent
type queuedDamage struct {
	entry  *donburi.Entry
	source components.DamageSource
}

func (q queuedDamage) ApplyDamage(amount int) {
	QueueDamage(q.entry, amount, q.source)
}

// QueueDamage adds damage to be applied by the next UpdateCombat. Damage
// queued in the same frame accumulates.
func QueueDamage(e *donburi.Entry, amount int, source components.DamageSource) {
	if e.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(e)
		dmg.Amount += amount
		if source == components.DamageFromFall {
			dmg.Source = source
		}
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}
