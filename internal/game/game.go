package game

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/colorbet/internal/card"
	"github.com/lox/colorbet/internal/gameid"
	"github.com/lox/colorbet/internal/randutil"
)

// Settings are the rules of one game
type Settings struct {
	Rounds          int
	StartingChips   int
	CardsPerPlayer  int
	MaxCardsPerTurn int
	TiePolicy       TiePolicy
	Seed            int64 // 0 derives a seed from the clock
}

// DefaultSettings returns three rounds, 20 chips and five cards per player
func DefaultSettings() Settings {
	return Settings{
		Rounds:          3,
		StartingChips:   20,
		CardsPerPlayer:  5,
		MaxCardsPerTurn: 2,
		TiePolicy:       TieNegation,
	}
}

// Validate checks the settings against the fixed deck and table
func (s Settings) Validate() error {
	if s.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", s.Rounds)
	}
	if s.StartingChips < 0 {
		return fmt.Errorf("starting chips cannot be negative")
	}
	if s.CardsPerPlayer < 1 || s.CardsPerPlayer > MaxHandSize {
		return fmt.Errorf("cards per player must be between 1 and %d, got %d", MaxHandSize, s.CardsPerPlayer)
	}
	if NumPlayers*s.CardsPerPlayer > card.DeckSize {
		return fmt.Errorf("%d players with %d cards each exceeds the %d card deck", NumPlayers, s.CardsPerPlayer, card.DeckSize)
	}
	if s.MaxCardsPerTurn < 1 || s.MaxCardsPerTurn > 2 {
		return fmt.Errorf("max cards per turn must be 1 or 2, got %d", s.MaxCardsPerTurn)
	}
	if s.TiePolicy != TieNegation && s.TiePolicy != TieNeutral {
		return fmt.Errorf("unknown tie policy %d", s.TiePolicy)
	}
	return nil
}

// GameResult summarises a finished game
type GameResult struct {
	GameID      string
	Seed        int64
	Rounds      []RoundResult
	TeamScores  []int
	FinalChips  []int // by seat
	WinningTeam int   // -1 on a draw
	Draw        bool
	HighScore   int
}

// Game sets up the board, deals, and plays every round
type Game struct {
	id       string
	settings Settings
	board    *Board
	input    InputProvider
	renderer Renderer
	logger   *log.Logger
	bus      EventBus
	clock    quartz.Clock
	rng      *rand.Rand
	seed     int64
	dealt    int
	events   *EventLogger
}

// Option configures a Game
type Option func(*Game)

// WithEventBus publishes game events on bus
func WithEventBus(bus EventBus) Option {
	return func(g *Game) { g.bus = bus }
}

// WithClock sets the clock used for event timestamps and seed derivation
func WithClock(clock quartz.Clock) Option {
	return func(g *Game) { g.clock = clock }
}

// WithGameID fixes the game identifier
func WithGameID(id string) Option {
	return func(g *Game) { g.id = id }
}

// NewGame creates a game with the standard four-player seating
func NewGame(settings Settings, input InputProvider, renderer Renderer, logger *log.Logger, opts ...Option) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if renderer == nil {
		renderer = NopRenderer{}
	}

	g := &Game{
		settings: settings,
		board:    NewStandardBoard(),
		input:    input,
		renderer: renderer,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	if g.bus == nil {
		g.bus = NewEventBus()
	}
	if g.id == "" {
		id, err := gameid.Generate()
		if err != nil {
			return nil, err
		}
		g.id = id
	}

	g.seed = settings.Seed
	if g.seed == 0 {
		g.seed = randutil.SeedFromClock(g.clock)
	}
	g.rng = randutil.New(g.seed)

	g.events = NewEventLogger(logger)
	g.bus.Subscribe(g.events)
	return g, nil
}

// ID returns the game identifier
func (g *Game) ID() string {
	return g.id
}

// Seed returns the seed the deck was shuffled with
func (g *Game) Seed() int64 {
	return g.seed
}

// Board returns the game's board
func (g *Game) Board() *Board {
	return g.board
}

// Run plays the whole game
func (g *Game) Run(ctx context.Context) (GameResult, error) {
	defer g.bus.Unsubscribe(g.events)

	result := GameResult{GameID: g.id, Seed: g.seed, WinningTeam: -1}
	g.logger.Info("Starting game", "game", g.id, "seed", g.seed, "rounds", g.settings.Rounds)

	g.announceTeams()

	if err := g.deal(); err != nil {
		return result, err
	}
	if err := g.distributeChips(); err != nil {
		return result, err
	}

	driver := NewRoundDriver(g.board, g.input, g.logger, DriverConfig{
		GameID:          g.id,
		TiePolicy:       g.settings.TiePolicy,
		MaxCardsPerTurn: g.settings.MaxCardsPerTurn,
		DealtCards:      g.dealt,
		EventBus:        g.bus,
		Clock:           g.clock,
	})

	for round := 1; round <= g.settings.Rounds; round++ {
		rr, err := driver.Play(ctx, round)
		if err != nil {
			return result, err
		}
		result.Rounds = append(result.Rounds, rr)

		snapshot := g.board.Snapshot()
		snapshot.Round = round
		if err := g.renderer.RenderBoard(snapshot); err != nil {
			return result, fmt.Errorf("render board: %w", err)
		}
	}

	g.finish(&result)

	if err := g.renderer.RenderEndGame(g.board.Snapshot(), result); err != nil {
		return result, fmt.Errorf("render end game: %w", err)
	}
	g.bus.Publish(GameEndEvent{Result: result, timestamp: g.clock.Now()})
	return result, nil
}

func (g *Game) announceTeams() {
	g.renderer.Message("The teams have been formed!")
	for teamID := 0; teamID < g.board.TeamCount(); teamID++ {
		members, _ := g.board.Members(teamID)
		msg := fmt.Sprintf("Team %d:", teamID+1)
		for i, seat := range members {
			if i > 0 {
				msg += " and"
			}
			msg += fmt.Sprintf(" Player %d", g.board.players[seat].ID)
		}
		g.renderer.Message(msg)
	}
}

func (g *Game) deal() error {
	hands, err := card.DealHands(g.rng, g.board.SeatCount(), g.settings.CardsPerPlayer)
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	for seat, hand := range hands {
		for _, c := range hand {
			if err := g.board.players[seat].AddToHand(c); err != nil {
				return fmt.Errorf("deal: %w", err)
			}
			g.dealt++
		}
	}
	g.renderer.Message("The cards have been dealt to every player.")
	g.logger.Debug("Dealt cards", "cards", g.dealt)
	return nil
}

func (g *Game) distributeChips() error {
	for _, p := range g.board.players {
		if err := p.SetChips(g.settings.StartingChips); err != nil {
			return err
		}
	}
	g.board.UpdateTeamScores()
	return nil
}

// finish picks the team with the highest score; equal highest scores are a draw
func (g *Game) finish(result *GameResult) {
	highest := -1
	for teamID := 0; teamID < g.board.TeamCount(); teamID++ {
		score, _ := g.board.TeamScore(teamID)
		result.TeamScores = append(result.TeamScores, score)
		switch {
		case score > highest:
			highest = score
			result.WinningTeam = teamID
			result.Draw = false
		case score == highest:
			result.Draw = true
		}
	}
	if result.Draw {
		result.WinningTeam = -1
	}
	result.HighScore = highest

	for _, p := range g.board.players {
		result.FinalChips = append(result.FinalChips, p.Chips())
	}

	g.logger.Info("Game complete",
		"game", g.id,
		"scores", result.TeamScores,
		"winner", result.WinningTeam+1,
		"draw", result.Draw)
}
