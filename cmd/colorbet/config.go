package main

import (
	"fmt"

	"github.com/lox/colorbet/internal/config"
)

// loadConfig reads the config file and applies overrides before validating
func loadConfig(g *Globals, overrides ...func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", g.Config, err)
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if g.Debug {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// CheckConfigCmd validates a config file
type CheckConfigCmd struct {
	Init bool `help:"Write a config file with the default settings if none exists"`
}

func (c *CheckConfigCmd) Run(g *Globals) error {
	if c.Init {
		if err := config.WriteDefault(g.Config); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", g.Config)
	}

	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	settings, err := cfg.GameSettings()
	if err != nil {
		return err
	}
	timeout, err := cfg.SimulationTimeout()
	if err != nil {
		return err
	}

	fmt.Printf("%s is valid\n\n", g.Config)
	fmt.Printf("game:       %d rounds, %d chips, %d cards per player, up to %d per turn, %s ties, seed %d\n",
		settings.Rounds, settings.StartingChips, settings.CardsPerPlayer, settings.MaxCardsPerTurn,
		settings.TiePolicy, settings.Seed)
	fmt.Printf("display:    theme %s, tui %t\n", cfg.Display.Theme, cfg.Display.TUI)
	fmt.Printf("logging:    level %s, file %s\n", cfg.Logging.Level, cfg.Logging.File)
	fmt.Printf("simulation: %d games, %d workers, timeout %v\n", cfg.Simulation.Games, cfg.Simulation.Workers, timeout)
	return nil
}
