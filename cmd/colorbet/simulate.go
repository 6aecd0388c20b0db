package main

import (
	"io"
	"os"
	"time"

	"github.com/lox/colorbet/cmd/colorbet/shared"
	"github.com/lox/colorbet/internal/config"
	"github.com/lox/colorbet/internal/fileutil"
	"github.com/lox/colorbet/internal/simulator"
)

// SimulateCmd plays many games with random players and reports statistics
type SimulateCmd struct {
	Games     *int           `short:"n" help:"Number of games (overrides config)"`
	Workers   *int           `short:"w" help:"Concurrent games (overrides config)"`
	Seed      *int64         `help:"Base RNG seed, 0 for random (overrides the game seed in config)"`
	Timeout   *time.Duration `help:"Per-game timeout, 0 to disable (overrides config)"`
	TiePolicy *string        `help:"How tied categories are scored: negation or neutral (overrides config)"`
	Progress  int            `default:"0" help:"Log progress every N games (0 to disable)"`
	Report    string         `type:"path" help:"Also write the report to this file"`
}

func (c *SimulateCmd) overrides(cfg *config.Config) {
	if c.Games != nil {
		cfg.Simulation.Games = *c.Games
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
	if c.Timeout != nil {
		cfg.Simulation.Timeout = c.Timeout.String()
	}
	if c.TiePolicy != nil {
		cfg.Game.TiePolicy = *c.TiePolicy
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g, c.overrides)
	if err != nil {
		return err
	}
	settings, err := cfg.GameSettings()
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	timeout, err := cfg.SimulationTimeout()
	if err != nil {
		return err
	}

	logger := shared.SetupLogger(os.Stderr, level, "colorbet")
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Games:         cfg.Simulation.Games,
		Workers:       cfg.Simulation.Workers,
		Seed:          settings.Seed,
		Timeout:       timeout,
		Settings:      settings,
		Logger:        logger,
		ProgressEvery: c.Progress,
	})

	summary, err := sim.Run(ctx)
	if err != nil {
		logger.Error("Simulation failed", "seed", sim.Seed(), "error", err)
		return err
	}

	simulator.PrintSummary(os.Stdout, summary, sim.Seed())
	if c.Report != "" {
		err := fileutil.WriteAtomic(c.Report, 0o644, func(w io.Writer) error {
			simulator.PrintSummary(w, summary, sim.Seed())
			return nil
		})
		if err != nil {
			return err
		}
		logger.Info("Wrote report", "file", c.Report)
	}
	return nil
}
