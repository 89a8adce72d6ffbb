package systems

import (
	"testing"

	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyHealthDamage(t *testing.T) {
	attack := components.DamageEventData{Amount: 30, Source: components.DamageFromAttack}
	fall := components.DamageEventData{Amount: 10, Source: components.DamageFromFall}

	hp := components.HealthData{Current: 100, Max: 100}
	require.True(t, ApplyHealthDamage(&hp, attack, 1, true))
	assert.Equal(t, 70, hp.Current)
	assert.Equal(t, 1+cfg.Player.InvulnerableFor, hp.InvulnerableUntil)

	assert.False(t, ApplyHealthDamage(&hp, attack, 1.5, true), "invulnerable")
	assert.Equal(t, 70, hp.Current)

	assert.True(t, ApplyHealthDamage(&hp, fall, 1.5, true), "falls ignore invulnerability")
	assert.Equal(t, 60, hp.Current)

	assert.True(t, ApplyHealthDamage(&hp, components.DamageEventData{Amount: 500}, 10, true))
	assert.Equal(t, 0, hp.Current, "never negative")

	target := components.HealthData{Current: 50, Max: 50}
	require.True(t, ApplyHealthDamage(&target, attack, 1, false))
	assert.Zero(t, target.InvulnerableUntil, "targets take every hit")
	assert.True(t, ApplyHealthDamage(&target, attack, 1, false))
	assert.Equal(t, 0, target.Current)
}

func TestUpdateCombat_ClampsHealth(t *testing.T) {
	tw := newTestWorld(t)
	hp := components.Health.Get(tw.player)
	hp.Current = hp.Max + 50

	UpdateCombat(tw.ecs)
	assert.Equal(t, hp.Max, hp.Current)
	assert.False(t, tw.player.HasComponent(components.Death))
}

func TestUpdateCombat_PlayerDeathEndsGame(t *testing.T) {
	tw := newTestWorld(t)
	tw.frames(1, cfg.ActionAttack)
	require.NotEqual(t, components.PhaseNone, tw.combo().Playing)

	QueueDamage(tw.player, cfg.Player.Health, components.DamageFromAttack)
	UpdateCombat(tw.ecs)

	require.True(t, tw.player.HasComponent(components.Death))
	assert.Equal(t, components.PhaseNone, tw.combo().Playing, "running attack is cancelled")
	assert.Equal(t, 0.0, tw.motion().VelocityX)

	// Dying players ignore input
	x := tw.object().X
	for i := 0; i < 5; i++ {
		tw.press(cfg.ActionMoveRight)
		tw.step()
	}
	assert.Equal(t, x, tw.object().X)
	assert.Equal(t, session.Playing, tw.sess.State())

	tw.frames(secondsToFrames(cfg.Player.DeathDelay))
	assert.Equal(t, session.GameOver, tw.sess.State())
}

func TestTargetDefeat_ClearsStage(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateLevel(tw.ecs, components.LevelData{Stage: 1, TargetsTotal: 1})
	target := createTestTarget(tw, "dummy", inFrontX)
	targetObj := components.Object.Get(target).Object
	space := getSpace(tw.ecs.World)
	tw.frames(2)

	hitsToKill := (cfg.Combat.TargetHealth + cfg.Combat.AttackDamage - 1) / cfg.Combat.AttackDamage
	for i := 0; i < hitsToKill; i++ {
		require.Equal(t, 1, TargetsRemaining(tw.ecs.World))
		tw.frames(1, cfg.ActionAttack)
		require.True(t, waitFor(tw, 60, func() bool { return tw.combo().Playing == components.PhaseNone }))
	}

	require.True(t, target.Valid())
	assert.True(t, target.HasComponent(components.Death))
	assert.Equal(t, 0, TargetsRemaining(tw.ecs.World))

	require.True(t, waitFor(tw, secondsToFrames(cfg.Combat.TargetDeathDelay)+1, func() bool { return !target.Valid() }))
	assert.NotContains(t, space.Objects(), targetObj)

	require.True(t, waitFor(tw, secondsToFrames(cfg.Stage.ClearDelay)+1, tw.sess.StageCleared))
	stage, ok := tw.sess.TakeAdvance()
	assert.True(t, ok)
	assert.Equal(t, 2, stage)
}

func TestStageProgress_NoTargetsNeverClears(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateLevel(tw.ecs, components.LevelData{Stage: 1})

	tw.frames(120)
	assert.False(t, tw.sess.StageCleared())
}

func TestDeadZone_DamagesAndRespawns(t *testing.T) {
	tw := newTestWorld(t)
	factory.CreateDeadZone(tw.ecs, 300, 300, 100, 60)
	tw.frames(2)

	tw.motion().Facing = components.FacingLeft
	obj := tw.object()
	obj.X, obj.Y = 320, 230
	obj.Update()

	require.True(t, waitFor(tw, 120, func() bool { return tw.object().X == 100 }))
	assert.Equal(t, testFloorY-cfg.Player.CollisionHeight, tw.object().Y)
	assert.Equal(t, cfg.Player.Health-cfg.Player.FallDamage, components.Health.Get(tw.player).Current)
	assert.Equal(t, components.FacingLeft, tw.motion().Facing, "respawn keeps facing")
	assert.Equal(t, cfg.Motion.MaxJumpCharges, tw.motion().JumpChargesRemaining)

	tw.frames(30)
	assert.Equal(t, cfg.Player.Health-cfg.Player.FallDamage, components.Health.Get(tw.player).Current)
}

func TestRespawnPlayer_ResetsActions(t *testing.T) {
	tw := newTestWorld(t)
	tw.frames(2)
	tw.frames(1, cfg.ActionDash)
	require.True(t, tw.motion().IsDashing)

	RespawnPlayer(tw.player, 40, 100)
	assert.False(t, tw.motion().IsDashing)
	assert.True(t, tw.motion().CanDash)
	assert.Equal(t, components.SequenceIdle, tw.timers().Dash.Phase)
	assert.Equal(t, 40.0, tw.object().X)
	assert.Equal(t, 100.0, tw.object().Y)
}
