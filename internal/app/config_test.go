package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiledwater/internal/sims/water"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := pflag.NewFlagSet("tws", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, cfg.Load(fs)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tws.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "tile: 6\nbrush: 2\nlog-level: debug\nrock-chance: 0.1\n")

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Tile, "file overrides default")
	assert.Equal(t, 2, cfg.Brush)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 0.1, cfg.RockChance, 1e-9)
	assert.Equal(t, 100, cfg.Width, "keys missing from the file keep their default")

	t.Setenv("TWS_TILE", "5")
	t.Setenv("TWS_SIM_TPS", "30")
	cfg, err = load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Tile, "env overrides file")
	assert.Equal(t, 30, cfg.SimTPS)

	cfg, err = load(t, "--config", path, "--tile", "4")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Tile, "flag overrides env")
}

func TestLoadErrors(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	for _, args := range [][]string{
		{"--tile", "0"},
		{"--width", "-3"},
		{"--brush", "99"},
		{"--rock-chance", "1.5"},
		{"--sim-tps", "0"},
		{"--hud-width", "-1"},
		{"--log-level", "loud"},
		{"--log-format", "xml"},
	} {
		_, err := load(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

func TestSimOptionsRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Tile, cfg.Brush = 40, 30, 6, 3
	cfg.RockChance = 0.2
	cfg.Seed = 9

	got := water.FromMap(cfg.SimOptions())
	assert.Equal(t, water.Config{Width: 40, Height: 30, Tile: 6, Brush: 3, Seed: 9, RockChance: 0.2}, got)
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).LogOptions().Level)
}
