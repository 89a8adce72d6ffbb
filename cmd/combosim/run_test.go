package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	saved := cfg.Current()
	t.Cleanup(func() {
		cfg.Apply(saved)
		tuningPath, levelsDir, format, every = "", "", "table", 1
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_YAML(t *testing.T) {
	out, err := execute(t, "run", "../../scripts/movement.yaml", "--format", "yaml")
	require.NoError(t, err)

	var res sim.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "movement", res.Script)
	assert.NotEmpty(t, res.Frames)
	assert.Equal(t, 1, res.FinalStage)
}

func TestRun_TableWithTuning(t *testing.T) {
	dir := t.TempDir()
	tuning := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(tuning, []byte("motion:\n  maxJumpCharges: 3\n"), 0o644))

	out, err := execute(t, "run", "../../scripts/movement.yaml", "--tuning", tuning, "--every", "10", "--levels", "../../assets/levels")
	require.NoError(t, err)
	assert.Contains(t, out, "FRAME")
	assert.Contains(t, out, "DOBOK")
	assert.Contains(t, out, "movement:")
	assert.Equal(t, 3, cfg.Motion.MaxJumpCharges)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "missing.yaml")
	assert.Error(t, err)

	_, err = execute(t, "run", "../../scripts/combo.yaml", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "run")
	assert.Error(t, err)
}
