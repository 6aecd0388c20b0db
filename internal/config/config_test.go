package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/colorbet/internal/game"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	settings, err := c.GameSettings()
	require.NoError(t, err)
	assert.Equal(t, game.DefaultSettings(), settings)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorbet.hcl")
	src := `
game {
  rounds             = 5
  starting_chips     = 50
  cards_per_player   = 4
  max_cards_per_turn = 1
  tie_policy         = "neutral"
  seed               = 1234
}

display {
  theme = "plain"
  tui   = true
}

logging {
  level = "debug"
  file  = "game.log"
}

simulation {
  games   = 200
  workers = 8
  timeout = "250ms"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	settings, err := c.GameSettings()
	require.NoError(t, err)
	assert.Equal(t, game.Settings{
		Rounds:          5,
		StartingChips:   50,
		CardsPerPlayer:  4,
		MaxCardsPerTurn: 1,
		TiePolicy:       game.TieNeutral,
		Seed:            1234,
	}, settings)

	assert.Equal(t, "plain", c.Display.Theme)
	assert.True(t, c.Display.TUI)

	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
	assert.Equal(t, "game.log", c.Logging.File)

	assert.Equal(t, 200, c.Simulation.Games)
	assert.Equal(t, 8, c.Simulation.Workers)
	timeout, err := c.SimulationTimeout()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, timeout)
}

func TestParsePartialConfigAppliesDefaults(t *testing.T) {
	c, err := Parse([]byte(`
game {
  rounds = 2
}
`), "partial.hcl")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Game.Rounds)
	assert.Equal(t, 20, c.Game.StartingChips)
	assert.Equal(t, 5, c.Game.CardsPerPlayer)
	assert.Equal(t, "negation", c.Game.TiePolicy)
	assert.Equal(t, "color", c.Display.Theme)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 1000, c.Simulation.Games)
	assert.NoError(t, c.Validate())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`game {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL")

	_, err = Parse([]byte(`game { colour = "red" }`), "unknown.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")

	_, err = Parse([]byte(`game { rounds = "many" }`), "type.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"cards per player", func(c *Config) { c.Game.CardsPerPlayer = 6 }, "cards per player"},
		{"max cards per turn", func(c *Config) { c.Game.MaxCardsPerTurn = 3 }, "max cards per turn"},
		{"turn exceeds hand", func(c *Config) { c.Game.CardsPerPlayer = 1 }, "exceeds cards per player"},
		{"tie policy", func(c *Config) { c.Game.TiePolicy = "coin" }, "tie policy"},
		{"negative rounds", func(c *Config) { c.Game.Rounds = -1 }, "rounds"},
		{"theme", func(c *Config) { c.Display.Theme = "neon" }, "invalid theme"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "invalid level"},
		{"games", func(c *Config) { c.Simulation.Games = -5 }, "games"},
		{"workers", func(c *Config) { c.Simulation.Workers = -1 }, "workers"},
		{"timeout", func(c *Config) { c.Simulation.Timeout = "soon" }, "invalid timeout"},
		{"negative timeout", func(c *Config) { c.Simulation.Timeout = "-1s" }, "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestZeroTimeoutDisablesIt(t *testing.T) {
	c := Default()
	c.Simulation.Timeout = "0s"
	require.NoError(t, c.Validate())

	d, err := c.SimulationTimeout()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestEncodeRoundTrips(t *testing.T) {
	c := Default()
	c.Game.Seed = 42
	c.Display.TUI = true

	parsed, err := Parse(c.Encode(), "encoded.hcl")
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorbet.hcl")
	require.NoError(t, WriteDefault(path))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	assert.ErrorContains(t, WriteDefault(path), "already exists")
}
