package components

import "github.com/yohamta/donburi"

//go:generate mockgen -destination=mocks/mock_damage_target.go -package=mocks github.com/automoto/dobok/components DamageTarget

// DamageTarget receives damage from a hit resolution.
type DamageTarget interface {
	ApplyDamage(amount int)
}

// DamageableData lets an entity route hits to a custom target. Entities
// without one get their damage queued as a DamageEvent.
type DamageableData struct {
	Target DamageTarget
}

var Damageable = donburi.NewComponentType[DamageableData]()

// DamageEventData is damage queued for the combat system.
type DamageEventData struct {
	Amount int
	Source DamageSource
}

// DamageSource distinguishes attack hits from environment damage.
type DamageSource int

const (
	DamageFromAttack DamageSource = iota
	DamageFromFall
)

var DamageEvent = donburi.NewComponentType[DamageEventData]()
