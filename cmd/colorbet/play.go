package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/colorbet/cmd/colorbet/shared"
	"github.com/lox/colorbet/internal/config"
	"github.com/lox/colorbet/internal/display"
	"github.com/lox/colorbet/internal/game"
)

// PlayCmd plays one interactive game with all four players at the same terminal
type PlayCmd struct {
	Rounds    *int    `help:"Number of rounds (overrides config)"`
	Seed      *int64  `help:"Deck seed, 0 for random (overrides config)"`
	TiePolicy *string `help:"How tied categories are scored: negation or neutral (overrides config)"`
	Theme     *string `help:"Display theme: color or plain (overrides config)"`
	TUI       bool    `name:"tui" help:"Use the full-screen prompt"`
	History   string  `type:"path" help:"Directory to write the game history to"`
	Quiet     bool    `short:"q" help:"Don't narrate each bet and play"`
}

func (c *PlayCmd) overrides(cfg *config.Config) {
	if c.Rounds != nil {
		cfg.Game.Rounds = *c.Rounds
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.TiePolicy != nil {
		cfg.Game.TiePolicy = *c.TiePolicy
	}
	if c.Theme != nil {
		cfg.Display.Theme = *c.Theme
	}
	if c.TUI {
		cfg.Display.TUI = true
	}
}

func (c *PlayCmd) Run(g *Globals) error {
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

	// The terminal belongs to the game, so logs go to a file
	logFile, err := shared.OpenLogFile(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger := shared.SetupLogger(logFile, level, "colorbet")

	renderer, err := display.NewRenderer(os.Stdout, cfg.Display.Theme)
	if err != nil {
		return err
	}

	var input game.InputProvider
	if cfg.Display.TUI {
		input = display.NewTUIPrompter(os.Stdin, os.Stdout, renderer.Styles(), logger)
	} else {
		input = display.NewPrompter(os.Stdin, os.Stdout, renderer.Styles(), logger)
	}

	fmt.Println(renderer.Styles().Header.Render(" ♠ ♥ Colour Bet ♥ ♠ "))
	fmt.Println()

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	bus := game.NewEventBus()
	if !c.Quiet {
		bus.Subscribe(game.NewNarrator(renderer, game.FormattingOptions{}))
	}
	var history *game.HistoryRecorder
	if c.History != "" {
		history = game.NewHistoryRecorder(game.NewFileHistoryWriter(c.History))
		bus.Subscribe(history)
	}

	gm, err := game.NewGame(settings, input, renderer, logger, game.WithEventBus(bus))
	if err != nil {
		return err
	}
	logger.Info("Starting interactive game", "game", gm.ID(), "seed", gm.Seed(), "log", cfg.Logging.File)

	_, err = gm.Run(ctx)
	switch {
	case err == nil:
		if history != nil {
			if err := history.Err(); err != nil {
				return fmt.Errorf("writing history: %w", err)
			}
			logger.Info("Wrote game history", "dir", c.History)
		}
		return nil
	case errors.Is(err, context.Canceled),
		errors.Is(err, display.ErrInputClosed),
		errors.Is(err, display.ErrPromptAborted):
		logger.Info("Game abandoned", "game", gm.ID(), "reason", err)
		renderer.Message("Game abandoned.")
		return nil
	default:
		logger.Error("Game failed", "game", gm.ID(), "error", err)
		return err
	}
}
