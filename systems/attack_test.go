package systems

import (
	"testing"

	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/components/mocks"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/systems/factory"
	"github.com/automoto/dobok/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/mock/gomock"
)

// Player body is x 100..116, y 168..200. Facing right, the hit circle is
// centered at (124, 184).
const (
	inFrontX = 130.0
	behindX  = 70.0
	farX     = 150.0
)

func createTestTarget(tw *testWorld, name string, x float64) *donburi.Entry {
	return factory.CreateTarget(tw.ecs, name, x, testFloorY-32, 16, 32, 0)
}

func TestAttackPoint(t *testing.T) {
	tw := newTestWorld(t)
	obj := tw.object().Object

	x, y := AttackPoint(obj, components.FacingRight)
	assert.Equal(t, 108+cfg.Combat.AttackPointOffset, x)
	assert.Equal(t, 184.0, y)

	x, _ = AttackPoint(obj, components.FacingLeft)
	assert.Equal(t, 108-cfg.Combat.AttackPointOffset, x)
}

func TestQueryCircle(t *testing.T) {
	tw := newTestWorld(t)
	near := createTestTarget(tw, "near", inFrontX)
	createTestTarget(tw, "far", farX)
	space := getSpace(tw.ecs.World)

	hits := QueryCircle(space, 124, 184, cfg.Combat.AttackRange, tags.ResolvDamageable)
	require.Len(t, hits, 1)
	assert.Equal(t, near, hits[0].Data)

	// The circle's bounding box reaches the near target's corner but the
	// circle does not
	assert.Empty(t, QueryCircle(space, 114, 154, 18, tags.ResolvDamageable))
	assert.Empty(t, QueryCircle(nil, 124, 184, 18, tags.ResolvDamageable))
}

func TestResolveAttackHits_CustomTarget(t *testing.T) {
	tw := newTestWorld(t)
	ctrl := gomock.NewController(t)

	front := mocks.NewMockDamageTarget(ctrl)
	back := mocks.NewMockDamageTarget(ctrl)
	donburi.Add(createTestTarget(tw, "front", inFrontX), components.Damageable, &components.DamageableData{Target: front})
	donburi.Add(createTestTarget(tw, "back", behindX), components.Damageable, &components.DamageableData{Target: back})

	var landed []components.AttackLandedEvent
	components.AttackLanded.Subscribe(tw.ecs.World, func(_ donburi.World, e components.AttackLandedEvent) {
		landed = append(landed, e)
	})

	// Exactly once per resolution, and never the target behind
	front.EXPECT().ApplyDamage(cfg.Combat.AttackDamage).Times(2)
	back.EXPECT().ApplyDamage(gomock.Any()).Times(0)

	assert.Equal(t, 1, ResolveAttackHits(tw.ecs.World, tw.player, components.PhaseStage1, 1))
	assert.Equal(t, 0, ResolveAttackHits(tw.ecs.World, tw.player, components.PhaseStage2, 1+cfg.Combat.AttackCooldown/2),
		"rate limited by the attack cooldown")
	assert.Equal(t, 1, ResolveAttackHits(tw.ecs.World, tw.player, components.PhaseStage2, 1+cfg.Combat.AttackCooldown))

	components.AttackLanded.ProcessEvents(tw.ecs.World)
	require.Len(t, landed, 2)
	assert.Equal(t, tw.player.Entity(), landed[0].Attacker)
	assert.Equal(t, components.PhaseStage1, landed[0].Phase)
	assert.Equal(t, components.PhaseStage2, landed[1].Phase)
	assert.Equal(t, cfg.Combat.AttackDamage, landed[1].Damage)
}

func TestResolveAttackHits_FacingLeft(t *testing.T) {
	tw := newTestWorld(t)
	ctrl := gomock.NewController(t)

	back := mocks.NewMockDamageTarget(ctrl)
	donburi.Add(createTestTarget(tw, "back", 80), components.Damageable, &components.DamageableData{Target: back})
	tw.motion().Facing = components.FacingLeft

	back.EXPECT().ApplyDamage(cfg.Combat.AttackDamage)
	assert.Equal(t, 1, ResolveAttackHits(tw.ecs.World, tw.player, components.PhaseStage1, 0))
}

func TestResolveAttackHits_QueuesDamageByDefault(t *testing.T) {
	tw := newTestWorld(t)
	target := createTestTarget(tw, "dummy", inFrontX)

	require.Equal(t, 1, ResolveAttackHits(tw.ecs.World, tw.player, components.PhaseStage1, 0))
	require.True(t, target.HasComponent(components.DamageEvent))
	assert.Equal(t, cfg.Combat.AttackDamage, components.DamageEvent.Get(target).Amount)

	UpdateCombat(tw.ecs)
	assert.False(t, target.HasComponent(components.DamageEvent))
	assert.Equal(t, cfg.Combat.TargetHealth-cfg.Combat.AttackDamage, components.Health.Get(target).Current)
}

func TestQueueDamage_Accumulates(t *testing.T) {
	tw := newTestWorld(t)

	QueueDamage(tw.player, 5, components.DamageFromAttack)
	QueueDamage(tw.player, 7, components.DamageFromFall)
	QueueDamage(tw.player, 1, components.DamageFromAttack)

	dmg := components.DamageEvent.Get(tw.player)
	assert.Equal(t, 13, dmg.Amount)
	assert.Equal(t, components.DamageFromFall, dmg.Source)
}
