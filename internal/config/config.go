// Package config loads colorbet settings from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/colorbet/internal/display"
	"github.com/lox/colorbet/internal/fileutil"
	"github.com/lox/colorbet/internal/game"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "colorbet.hcl"

// Config represents the complete colorbet configuration
type Config struct {
	Game       *GameConfig       `hcl:"game,block"`
	Display    *DisplayConfig    `hcl:"display,block"`
	Logging    *LoggingConfig    `hcl:"logging,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// GameConfig contains the rules of a game
type GameConfig struct {
	Rounds          int    `hcl:"rounds,optional"`
	StartingChips   int    `hcl:"starting_chips,optional"`
	CardsPerPlayer  int    `hcl:"cards_per_player,optional"`
	MaxCardsPerTurn int    `hcl:"max_cards_per_turn,optional"`
	TiePolicy       string `hcl:"tie_policy,optional"`
	Seed            int64  `hcl:"seed,optional"`
}

// DisplayConfig controls how the game is drawn
type DisplayConfig struct {
	Theme string `hcl:"theme,optional"`
	TUI   bool   `hcl:"tui,optional"`
}

// LoggingConfig controls the log level and destination
type LoggingConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SimulationConfig controls batch simulation
type SimulationConfig struct {
	Games   int    `hcl:"games,optional"`
	Workers int    `hcl:"workers,optional"`
	Timeout string `hcl:"timeout,optional"`
}

// Default returns the default configuration
func Default() *Config {
	settings := game.DefaultSettings()
	return &Config{
		Game: &GameConfig{
			Rounds:          settings.Rounds,
			StartingChips:   settings.StartingChips,
			CardsPerPlayer:  settings.CardsPerPlayer,
			MaxCardsPerTurn: settings.MaxCardsPerTurn,
			TiePolicy:       settings.TiePolicy.String(),
		},
		Display: &DisplayConfig{
			Theme: display.ThemeColor,
		},
		Logging: &LoggingConfig{
			Level: "info",
			File:  "colorbet.log",
		},
		Simulation: &SimulationConfig{
			Games:   1000,
			Workers: 4,
			Timeout: "5s",
		},
	}
}

// Load reads configuration from an HCL file, returning defaults if it doesn't exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse reads configuration from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

// Encode renders the configuration as HCL
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return f.Bytes()
}

// WriteDefault writes the default configuration to filename, refusing to
// overwrite an existing file
func WriteDefault(filename string) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("%s already exists", filename)
	}
	return fileutil.WriteFileAtomic(filename, Default().Encode(), 0o644)
}

// applyDefaults fills missing blocks and zero values
func (c *Config) applyDefaults() {
	def := Default()

	if c.Game == nil {
		c.Game = def.Game
	}
	if c.Game.Rounds == 0 {
		c.Game.Rounds = def.Game.Rounds
	}
	if c.Game.StartingChips == 0 {
		c.Game.StartingChips = def.Game.StartingChips
	}
	if c.Game.CardsPerPlayer == 0 {
		c.Game.CardsPerPlayer = def.Game.CardsPerPlayer
	}
	if c.Game.MaxCardsPerTurn == 0 {
		c.Game.MaxCardsPerTurn = def.Game.MaxCardsPerTurn
	}
	if c.Game.TiePolicy == "" {
		c.Game.TiePolicy = def.Game.TiePolicy
	}

	if c.Display == nil {
		c.Display = def.Display
	}
	if c.Display.Theme == "" {
		c.Display.Theme = def.Display.Theme
	}

	if c.Logging == nil {
		c.Logging = def.Logging
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.File == "" {
		c.Logging.File = def.Logging.File
	}

	if c.Simulation == nil {
		c.Simulation = def.Simulation
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = def.Simulation.Games
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = def.Simulation.Workers
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = def.Simulation.Timeout
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	settings, err := c.GameSettings()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if c.Game.MaxCardsPerTurn > c.Game.CardsPerPlayer {
		return fmt.Errorf("game: max cards per turn (%d) exceeds cards per player (%d)",
			c.Game.MaxCardsPerTurn, c.Game.CardsPerPlayer)
	}

	switch c.Display.Theme {
	case display.ThemeColor, display.ThemePlain:
	default:
		return fmt.Errorf("display: invalid theme %q", c.Display.Theme)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation: games must be at least 1")
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("simulation: workers must be at least 1")
	}
	if _, err := c.SimulationTimeout(); err != nil {
		return err
	}

	return nil
}

// GameSettings converts the game block into game.Settings
func (c *Config) GameSettings() (game.Settings, error) {
	policy, err := game.ParseTiePolicy(c.Game.TiePolicy)
	if err != nil {
		return game.Settings{}, fmt.Errorf("game: %w", err)
	}
	return game.Settings{
		Rounds:          c.Game.Rounds,
		StartingChips:   c.Game.StartingChips,
		CardsPerPlayer:  c.Game.CardsPerPlayer,
		MaxCardsPerTurn: c.Game.MaxCardsPerTurn,
		TiePolicy:       policy,
		Seed:            c.Game.Seed,
	}, nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (log.Level, error) {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return log.InfoLevel, fmt.Errorf("logging: invalid level %q", c.Logging.Level)
	}
	return log.ParseLevel(c.Logging.Level)
}

// SimulationTimeout parses the per-game simulation timeout. Zero disables it.
func (c *Config) SimulationTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return 0, fmt.Errorf("simulation: invalid timeout %q: %w", c.Simulation.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("simulation: timeout cannot be negative")
	}
	return d, nil
}
