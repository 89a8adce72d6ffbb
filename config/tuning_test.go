package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestParseTuning_OverlaysDefaults(t *testing.T) {
	data := []byte(`
motion:
  moveSpeed: 200
  maxJumpCharges: 3
dash:
  allowAirDash: false
combat:
  stageDurations: [0.1, 0.2, 0.3]
`)
	tn, err := ParseTuning(data)
	require.NoError(t, err)

	assert.Equal(t, 200.0, tn.Motion.MoveSpeed)
	assert.Equal(t, 3, tn.Motion.MaxJumpCharges)
	assert.False(t, tn.Dash.AllowAirDash)
	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, tn.Combat.StageDurations)

	// Untouched keys keep their defaults
	def := Defaults()
	assert.Equal(t, def.Motion.JumpImpulse, tn.Motion.JumpImpulse)
	assert.Equal(t, def.Dash.Speed, tn.Dash.Speed)
	assert.Equal(t, def.Combat.PostWindowDuration, tn.Combat.PostWindowDuration)
}

func TestParseTuning_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero jump charges", "motion:\n  maxJumpCharges: 0\n"},
		{"negative dash duration", "dash:\n  dashDuration: -1\n"},
		{"threshold above one", "combat:\n  completionThreshold: 1.5\n"},
		{"zero stage duration", "combat:\n  stageDurations: [0.3, 0, 0.3]\n"},
		{"no stages", "stage:\n  maxStages: 0\n"},
		{"zero tick rate", "physics:\n  tickRate: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTuning))
		})
	}
}

func TestParseTuning_Malformed(t *testing.T) {
	_, err := ParseTuning([]byte("motion: [not, a, map"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidTuning))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	tn := Defaults()
	tn.Motion.MaxJumpCharges = 0
	tn.Player.Health = 0

	err := tn.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxJumpCharges")
	assert.Contains(t, err.Error(), "player.health")
}

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roll:\n  rollSpeed: 99\n"), 0o644))

	tn, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 99.0, tn.Roll.Speed)

	_, err = LoadTuning(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestApplyAndCurrent(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	tn := Defaults()
	tn.Physics.TickRate = 120
	tn.Combat.AttackDamage = 7
	Apply(tn)

	assert.Equal(t, 7, Combat.AttackDamage)
	assert.InDelta(t, 1.0/120.0, StepSeconds(), 1e-12)
	assert.Equal(t, tn, Current())
}

func TestParseAction(t *testing.T) {
	for id := ActionMoveLeft; id < ActionCount; id++ {
		got, ok := ParseAction(id.String())
		require.True(t, ok, id.String())
		assert.Equal(t, id, got)
	}
	_, ok := ParseAction("teleport")
	assert.False(t, ok)
}
