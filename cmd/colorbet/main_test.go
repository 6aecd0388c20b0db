package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/colorbet/internal/config"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("colorbet"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestPlayIsDefaultCommand(t *testing.T) {
	_, ctx := parseCLI(t)
	assert.Equal(t, "play", ctx.Command())
}

func TestPlayOverrides(t *testing.T) {
	cli, _ := parseCLI(t, "play", "--rounds=5", "--seed=9", "--tie-policy=neutral", "--theme=plain", "--tui")

	cfg := config.Default()
	cli.Play.overrides(cfg)

	assert.Equal(t, 5, cfg.Game.Rounds)
	assert.Equal(t, int64(9), cfg.Game.Seed)
	assert.Equal(t, "neutral", cfg.Game.TiePolicy)
	assert.Equal(t, "plain", cfg.Display.Theme)
	assert.True(t, cfg.Display.TUI)
}

func TestSimulateOverrides(t *testing.T) {
	cli, ctx := parseCLI(t, "simulate", "-n", "20", "-w", "3", "--timeout=2s", "--seed=77")
	assert.Equal(t, "simulate", ctx.Command())

	cfg := config.Default()
	cli.Simulate.overrides(cfg)

	assert.Equal(t, 20, cfg.Simulation.Games)
	assert.Equal(t, 3, cfg.Simulation.Workers)
	assert.Equal(t, (2 * time.Second).String(), cfg.Simulation.Timeout)
	assert.Equal(t, int64(77), cfg.Game.Seed)
}

func TestUnsetOverridesKeepConfig(t *testing.T) {
	cli, _ := parseCLI(t, "simulate")

	cfg := config.Default()
	cli.Simulate.overrides(cfg)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorbet.hcl")
	require.NoError(t, os.WriteFile(path, []byte("game {\n  rounds = 4\n}\n"), 0o600))

	cfg, err := loadConfig(&Globals{Config: path, Debug: true})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.Rounds)
	assert.Equal(t, "debug", cfg.Logging.Level)

	_, err = loadConfig(&Globals{Config: path}, func(c *config.Config) { c.Game.Rounds = -1 })
	assert.ErrorContains(t, err, "invalid config")
}
