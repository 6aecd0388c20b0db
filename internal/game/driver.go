package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Prediction is a player's wager for one round
type Prediction struct {
	PlayerID int
	Team     int
	Outcome  Outcome
	Category Category
	Stake    int
}

// RoundResult summarises one played round
type RoundResult struct {
	Round       int
	Predictions []Prediction // by seat
	Resolution  Resolution
	Payouts     []Payout // by seat
	TeamScores  []int
	Retired     int
}

// DriverConfig configures a RoundDriver
type DriverConfig struct {
	GameID          string
	TiePolicy       TiePolicy
	MaxCardsPerTurn int
	// DealtCards enables the post-round card conservation check when positive
	DealtCards int
	EventBus   EventBus
	Clock      quartz.Clock
}

// RoundDriver runs one round at a time through the phase state machine:
// Dealt, Wagering(outcome), Wagering(color), Staking, Playing, Resolving,
// Settled, Retiring. Players act strictly in seat order.
type RoundDriver struct {
	board  *Board
	input  InputProvider
	logger *log.Logger
	config DriverConfig

	phase Phase
	round int
}

// NewRoundDriver creates a driver over board, asking input for every decision
func NewRoundDriver(board *Board, input InputProvider, logger *log.Logger, config DriverConfig) *RoundDriver {
	if config.MaxCardsPerTurn <= 0 {
		config.MaxCardsPerTurn = 2
	}
	if config.EventBus == nil {
		config.EventBus = NewEventBus()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &RoundDriver{
		board:  board,
		input:  input,
		logger: logger,
		config: config,
		phase:  PhaseComplete,
	}
}

// Phase returns the current phase
func (d *RoundDriver) Phase() Phase {
	return d.phase
}

// Play runs a complete round and returns its result
func (d *RoundDriver) Play(ctx context.Context, round int) (RoundResult, error) {
	d.round = round
	d.phase = PhaseDealt
	result := RoundResult{
		Round:       round,
		Predictions: make([]Prediction, d.board.SeatCount()),
	}

	d.logger.Debug("Starting round", "round", round)
	d.config.EventBus.Publish(RoundStartEvent{
		GameID:    d.config.GameID,
		Round:     round,
		timestamp: d.config.Clock.Now(),
	})

	steps := []struct {
		phase Phase
		run   func(context.Context, *RoundResult) error
	}{
		{PhaseWagerOutcome, d.wagerOutcome},
		{PhaseWagerColor, d.wagerColor},
		{PhaseStaking, d.staking},
		{PhasePlaying, d.playing},
		{PhaseResolving, d.resolving},
		{PhaseSettled, d.settle},
		{PhaseRetiring, d.retire},
	}

	for _, step := range steps {
		if err := d.enter(step.phase); err != nil {
			return result, err
		}
		if err := step.run(ctx, &result); err != nil {
			return result, fmt.Errorf("round %d %s: %w", round, step.phase, err)
		}
	}

	if err := d.enter(PhaseComplete); err != nil {
		return result, err
	}

	d.config.EventBus.Publish(RoundResolvedEvent{Result: result, timestamp: d.config.Clock.Now()})
	return result, nil
}

func (d *RoundDriver) enter(to Phase) error {
	next, err := d.phase.Next()
	if err != nil {
		return err
	}
	if to != next {
		return fmt.Errorf("%s to %s: %w", d.phase, to, ErrInvalidPhase)
	}

	from := d.phase
	d.phase = to
	d.logger.Debug("Phase change", "round", d.round, "from", from, "to", to)
	d.config.EventBus.Publish(PhaseChangeEvent{
		Round:     d.round,
		From:      from,
		To:        to,
		timestamp: d.config.Clock.Now(),
	})
	return nil
}

// ask blocks until the provider answers within range. Out of range answers
// are logged and asked again without limit.
func (d *RoundDriver) ask(ctx context.Context, seat int, kind PromptKind, lo, hi int, message string) (int, error) {
	p := d.board.players[seat]
	prompt := Prompt{
		Kind:     kind,
		Round:    d.round,
		Seat:     seat,
		PlayerID: p.ID,
		Message:  message,
		Min:      lo,
		Max:      hi,
		Player:   d.board.snapshotPlayer(seat),
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		v, err := d.input.PromptInt(ctx, prompt)
		if err != nil {
			return 0, fmt.Errorf("asking player %d for %s: %w", p.ID, kind, err)
		}
		if prompt.InRange(v) {
			return v, nil
		}
		d.logger.Warn("Answer out of range, asking again",
			"player", p.ID, "prompt", kind, "answer", v, "min", lo, "max", hi)
	}
}

func (d *RoundDriver) wagerOutcome(ctx context.Context, result *RoundResult) error {
	for seat, p := range d.board.players {
		v, err := d.ask(ctx, seat, PromptOutcome, int(Loss), int(Win),
			fmt.Sprintf("Player %d, place your bet (0 = Loss, 1 = Win)", p.ID))
		if err != nil {
			return err
		}
		outcome, err := outcomeFromInt(v)
		if err != nil {
			return err
		}
		p.Outcome = outcome
		d.publishWager(p, PhaseWagerOutcome, 0)
	}
	return nil
}

func (d *RoundDriver) wagerColor(ctx context.Context, result *RoundResult) error {
	for seat, p := range d.board.players {
		v, err := d.ask(ctx, seat, PromptCategory, int(CategoryBlack), int(CategoryMulticolor),
			fmt.Sprintf("Player %d, choose a category (0 = Black, 1 = Red, 2 = Multicolor)", p.ID))
		if err != nil {
			return err
		}
		category, err := categoryFromInt(v)
		if err != nil {
			return err
		}
		p.Category = category
		d.publishWager(p, PhaseWagerColor, 0)

		result.Predictions[seat] = Prediction{
			PlayerID: p.ID,
			Team:     d.board.seatTeam[seat],
			Outcome:  p.Outcome,
			Category: p.Category,
		}
	}
	return nil
}

func (d *RoundDriver) staking(ctx context.Context, result *RoundResult) error {
	for seat, p := range d.board.players {
		for {
			v, err := d.ask(ctx, seat, PromptStake, 0, p.Chips(),
				fmt.Sprintf("Player %d, stake your chips (0 to %d)", p.ID, p.Chips()))
			if err != nil {
				return err
			}
			if err := p.Stake(v); err != nil {
				if errors.Is(err, ErrInsufficientChips) || errors.Is(err, ErrNegativeAmount) {
					d.logger.Warn("Stake rejected, asking again", "player", p.ID, "error", err)
					continue
				}
				return err
			}
			break
		}
		result.Predictions[seat].Stake = p.Staked()
		d.publishWager(p, PhaseStaking, p.Staked())
	}
	return nil
}

func (d *RoundDriver) playing(ctx context.Context, result *RoundResult) error {
	for seat, p := range d.board.players {
		if p.HandSize() == 0 {
			d.logger.Warn("Player has no cards left, skipping", "player", p.ID, "round", d.round)
			continue
		}

		n, err := d.ask(ctx, seat, PromptCardCount, 1, d.config.MaxCardsPerTurn,
			fmt.Sprintf("Player %d, how many cards will you play (%d maximum)?", p.ID, d.config.MaxCardsPerTurn))
		if err != nil {
			return err
		}
		for n > p.HandSize() {
			d.logger.Warn("Not enough cards in hand", "player", p.ID, "requested", n, "hand", p.HandSize())
			n, err = d.ask(ctx, seat, PromptCardCount, 1, p.HandSize(),
				fmt.Sprintf("Player %d, you only have %d card(s) in hand", p.ID, p.HandSize()))
			if err != nil {
				return err
			}
		}

		for range n {
			idx, err := d.ask(ctx, seat, PromptCard, 0, p.HandSize()-1,
				fmt.Sprintf("Player %d, choose a card (index 0 to %d)", p.ID, p.HandSize()-1))
			if err != nil {
				return err
			}
			c, err := p.PlayCard(idx)
			if errors.Is(err, ErrTableFull) {
				d.logger.Warn("Played area full, dropping play", "player", p.ID)
				break
			}
			if err != nil {
				return err
			}
			d.config.EventBus.Publish(CardPlayedEvent{
				Round:     d.round,
				PlayerID:  p.ID,
				Card:      c,
				timestamp: d.config.Clock.Now(),
			})
		}
	}
	return nil
}

func (d *RoundDriver) resolving(_ context.Context, result *RoundResult) error {
	res, err := Resolve(d.board, d.config.TiePolicy)
	if err != nil {
		return err
	}
	if err := ApplyResolution(d.board, res); err != nil {
		return err
	}
	result.Resolution = res

	d.logger.Debug("Round resolved",
		"round", d.round,
		"team1", res.Totals[0],
		"team2", res.Totals[1],
		"winners", res.Winners)
	return nil
}

func (d *RoundDriver) settle(_ context.Context, result *RoundResult) error {
	result.Payouts = AttributeChips(d.board.players)
	d.board.UpdateTeamScores()

	result.TeamScores = make([]int, 0, d.board.TeamCount())
	for _, t := range d.board.teams {
		result.TeamScores = append(result.TeamScores, t.Score)
	}
	return nil
}

func (d *RoundDriver) retire(_ context.Context, result *RoundResult) error {
	result.Retired = d.board.RetirePlayedCards()
	if d.config.DealtCards > 0 {
		return d.board.ValidateCardConservation(d.config.DealtCards)
	}
	return nil
}

func (d *RoundDriver) publishWager(p *Player, phase Phase, stake int) {
	d.config.EventBus.Publish(WagerEvent{
		Round:     d.round,
		PlayerID:  p.ID,
		Phase:     phase,
		Outcome:   p.Outcome,
		Category:  p.Category,
		Stake:     stake,
		timestamp: d.config.Clock.Now(),
	})
}
