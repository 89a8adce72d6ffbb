package systems

import (
	"log"

	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDobokPickups puts on the uniform the player touches and withdraws
// the stage's other offers.
func UpdateDobokPickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	var picked *donburi.Entry
	for _, o := range touching(components.Object.Get(playerEntry).Object, tags.ResolvDobok) {
		if e, ok := o.Data.(*donburi.Entry); ok && e.HasComponent(components.DobokPickup) {
			picked = e
			break
		}
	}
	if picked == nil {
		return
	}

	name := components.DobokPickup.Get(picked).Name
	components.Player.Get(playerEntry).Dobok = name
	log.Printf("[dobok] Player put on %q", name)

	var offers []*donburi.Entry
	tags.Dobok.Each(ecs.World, func(e *donburi.Entry) {
		offers = append(offers, e)
	})
	for _, e := range offers {
		removeEntity(ecs.World, e)
	}
}
