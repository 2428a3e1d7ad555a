package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"

	"montyhall/internal/montyhall"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSimDefaults(t *testing.T) {
	cfg, err := LoadSim("")
	require.NoError(t, err)
	require.Equal(t, montyhall.DefaultIterations, cfg.Iterations)
	require.Zero(t, cfg.Seed)
	list, err := cfg.StrategyList()
	require.NoError(t, err)
	require.Equal(t, []montyhall.Strategy{montyhall.Switch, montyhall.Stay}, list)
}

func TestLoadSim(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		path := writeFile(t, "sim.yaml", `
iterations: 500
seed: 42
checkpoint: 100
strategies: [" Stay ", switch]
`)
		cfg, err := LoadSim(path)
		require.NoError(t, err)
		require.Equal(t, 500, cfg.Iterations)
		require.Equal(t, int64(42), cfg.Seed)
		require.Equal(t, 100, cfg.Checkpoint)
		require.Equal(t, []string{"stay", "switch"}, cfg.Strategies)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := LoadSim(writeFile(t, "sim.yml", "seed: 9\n"))
		require.NoError(t, err)
		require.Equal(t, montyhall.DefaultIterations, cfg.Iterations)
		require.Equal(t, []string{"switch", "stay"}, cfg.Strategies)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadSim(writeFile(t, "sim.yaml", "iterationz: 10\n"))
		require.Error(t, err)
	})

	t.Run("extension check", func(t *testing.T) {
		_, err := LoadSim(writeFile(t, "sim.toml", "iterations = 1\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSim(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestLoadSimEmptyFile(t *testing.T) {
	cfg, err := LoadSim(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestValidate(t *testing.T) {
	load := func(t *testing.T, content string) *SimConfig {
		cfg, err := LoadSim(writeFile(t, "sim.yaml", content))
		require.NoError(t, err)
		return cfg
	}

	t.Run("zero iterations", func(t *testing.T) {
		err := load(t, "iterations: 0\n").Validate()
		require.Error(t, err)
		require.Equal(t, montyhall.ErrInvalidIterations, errors.Cause(err))
	})

	t.Run("override after load", func(t *testing.T) {
		cfg := load(t, "iterations: 0\n")
		cfg.Iterations = 10
		require.NoError(t, cfg.Validate())
	})

	t.Run("unknown strategy", func(t *testing.T) {
		require.Error(t, load(t, "strategies: [switch, random]\n").Validate())
	})

	t.Run("duplicate strategy", func(t *testing.T) {
		require.Error(t, load(t, "strategies: [stay, stay]\n").Validate())
	})

	t.Run("negative checkpoint", func(t *testing.T) {
		require.Error(t, load(t, "checkpoint: -1\n").Validate())
	})

	t.Run("defaults", func(t *testing.T) {
		require.NoError(t, Default().Validate())
	})
}
