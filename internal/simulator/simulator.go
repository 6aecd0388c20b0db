// Package simulator plays many independent games with scripted input.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/colorbet/internal/game"
	"github.com/lox/colorbet/internal/randutil"
	"github.com/lox/colorbet/internal/scripted"
	"github.com/lox/colorbet/internal/statistics"
)

// ErrTimeout is the cause attached to a game that ran past its timeout
var ErrTimeout = errors.New("game timed out")

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Workers  int
	Seed     int64         // 0 derives a seed from the clock
	Timeout  time.Duration // per game, 0 disables
	Settings game.Settings
	Logger   *log.Logger
	Clock    quartz.Clock

	// NewInput builds the input for one game. Defaults to scripted.Random
	// seeded from inputSeed.
	NewInput func(inputSeed int64) game.InputProvider

	// ProgressEvery logs progress after this many completed games, 0 disables
	ProgressEvery int
}

// Simulator runs colour betting games concurrently
type Simulator struct {
	config    Config
	collector *statistics.Collector
	completed atomic.Int64
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.NewInput == nil {
		config.NewInput = func(seed int64) game.InputProvider {
			return scripted.NewRandom(randutil.New(seed))
		}
	}
	if config.Seed == 0 {
		config.Seed = randutil.SeedFromClock(config.Clock)
	}
	return &Simulator{
		config:    config,
		collector: statistics.NewCollector(),
	}
}

// Seed returns the base seed every game seed is derived from
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// Run plays every game and returns the aggregate summary. The first failing
// game cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*statistics.Summary, error) {
	if s.config.Games < 1 {
		return nil, fmt.Errorf("games must be at least 1, got %d", s.config.Games)
	}
	if err := s.config.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation",
		"games", s.config.Games,
		"workers", s.config.Workers,
		"seed", s.config.Seed,
		"timeout", s.config.Timeout)
	start := s.config.Clock.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return s.playGame(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := s.collector.Summary()
	if err := summary.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete",
		"games", summary.Games,
		"elapsed", s.config.Clock.Since(start))
	return &summary, nil
}

// GameSeed returns the deck and input seeds for game n
func (s *Simulator) GameSeed(n int) (deckSeed, inputSeed int64) {
	deckSeed = randutil.Derive(s.config.Seed, n)
	if deckSeed == 0 {
		deckSeed = 1
	}
	return deckSeed, randutil.Derive(deckSeed, 0)
}

// playGame runs game n with its own bus and cancels it when the timeout fires
func (s *Simulator) playGame(ctx context.Context, n int) error {
	deckSeed, inputSeed := s.GameSeed(n)

	settings := s.config.Settings
	settings.Seed = deckSeed

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if s.config.Timeout > 0 {
		timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
			cancel(fmt.Errorf("game %d timed out after %v (seed: %d): %w", n+1, s.config.Timeout, deckSeed, ErrTimeout))
		})
		defer timer.Stop()
	}

	bus := game.NewEventBus()
	bus.Subscribe(s.collector)

	g, err := game.NewGame(settings, s.config.NewInput(inputSeed), nil, s.config.Logger,
		game.WithEventBus(bus),
		game.WithClock(s.config.Clock))
	if err != nil {
		return err
	}

	if _, err := g.Run(ctx); err != nil {
		if cause := context.Cause(ctx); cause != nil && errors.Is(cause, ErrTimeout) {
			return cause
		}
		return fmt.Errorf("game %d (seed: %d): %w", n+1, deckSeed, err)
	}

	done := s.completed.Add(1)
	if every := int64(s.config.ProgressEvery); every > 0 && done%every == 0 {
		s.config.Logger.Info("Simulation progress", "completed", done, "total", s.config.Games)
	}
	return nil
}

// Completed returns how many games have finished
func (s *Simulator) Completed() int {
	return int(s.completed.Load())
}
