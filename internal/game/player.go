package game

import (
	"fmt"

	"github.com/lox/colorbet/internal/card"
)

const (
	// MaxHandSize bounds hand plus played area for a player
	MaxHandSize = 5
	// MaxPlayedSize bounds the played area
	MaxPlayedSize = 5
)

// Player represents a seated participant. The board owns every Player;
// teams and the round driver refer to players by seat.
type Player struct {
	ID       int // 1-based, stable for the whole game
	Outcome  Outcome
	Category Category

	hand        []card.Card
	played      []card.Card
	chips       int
	staked      int
	roundScore  int
	roundWinner bool
}

// NewPlayer creates a player with an empty hand and no chips
func NewPlayer(id int) *Player {
	return &Player{
		ID:     id,
		hand:   make([]card.Card, 0, MaxHandSize),
		played: make([]card.Card, 0, MaxPlayedSize),
	}
}

// AddToHand deals a card into the player's hand
func (p *Player) AddToHand(c card.Card) error {
	if len(p.hand)+len(p.played) >= MaxHandSize {
		return fmt.Errorf("player %d: %w", p.ID, ErrHandFull)
	}
	p.hand = append(p.hand, c)
	return nil
}

// RemoveFromHand takes the card at index out of the hand
func (p *Player) RemoveFromHand(index int) (card.Card, error) {
	if index < 0 || index >= len(p.hand) {
		return card.Card{}, fmt.Errorf("player %d hand index %d: %w", p.ID, index, ErrInvalidIndex)
	}
	c := p.hand[index]
	p.hand = append(p.hand[:index], p.hand[index+1:]...)
	return c, nil
}

// PlayCard moves the card at index from the hand to the played area
func (p *Player) PlayCard(index int) (card.Card, error) {
	if index < 0 || index >= len(p.hand) {
		return card.Card{}, fmt.Errorf("player %d hand index %d: %w", p.ID, index, ErrInvalidIndex)
	}
	if len(p.played) >= MaxPlayedSize {
		return card.Card{}, fmt.Errorf("player %d: %w", p.ID, ErrTableFull)
	}
	c, _ := p.RemoveFromHand(index)
	p.played = append(p.played, c)
	return c, nil
}

// RetirePlayedCards drains the played area, highest index first.
// The returned cards are in removal order.
func (p *Player) RetirePlayedCards() []card.Card {
	retired := make([]card.Card, 0, len(p.played))
	for i := len(p.played) - 1; i >= 0; i-- {
		retired = append(retired, p.played[i])
		p.played = p.played[:i]
	}
	return retired
}

// HandSize returns the number of cards in hand
func (p *Player) HandSize() int {
	return len(p.hand)
}

// CardInHand returns the card at index in the hand
func (p *Player) CardInHand(index int) (card.Card, error) {
	if index < 0 || index >= len(p.hand) {
		return card.Card{}, fmt.Errorf("player %d hand index %d: %w", p.ID, index, ErrInvalidIndex)
	}
	return p.hand[index], nil
}

// Hand returns a copy of the hand
func (p *Player) Hand() []card.Card {
	return append([]card.Card(nil), p.hand...)
}

// PlayedSize returns the number of cards in the played area
func (p *Player) PlayedSize() int {
	return len(p.played)
}

// PlayedCard returns the card at index in the played area
func (p *Player) PlayedCard(index int) (card.Card, error) {
	if index < 0 || index >= len(p.played) {
		return card.Card{}, fmt.Errorf("player %d played index %d: %w", p.ID, index, ErrInvalidIndex)
	}
	return p.played[index], nil
}

// Played returns a copy of the played area
func (p *Player) Played() []card.Card {
	return append([]card.Card(nil), p.played...)
}

// Chips returns the chip balance, excluding any stake
func (p *Player) Chips() int {
	return p.chips
}

// SetChips sets the chip balance
func (p *Player) SetChips(n int) error {
	if n < 0 {
		return fmt.Errorf("player %d chips %d: %w", p.ID, n, ErrNegativeAmount)
	}
	p.chips = n
	return nil
}

// Staked returns the chips at risk this round
func (p *Player) Staked() int {
	return p.staked
}

// Stake moves amount from the balance into the stake
func (p *Player) Stake(amount int) error {
	if amount < 0 {
		return fmt.Errorf("player %d stake %d: %w", p.ID, amount, ErrNegativeAmount)
	}
	if amount > p.chips {
		return fmt.Errorf("player %d stake %d with balance %d: %w", p.ID, amount, p.chips, ErrInsufficientChips)
	}
	p.chips -= amount
	p.staked += amount
	return nil
}

// SettleRound pays out twice the stake on a win and clears the stake either way.
// It returns the amount credited.
func (p *Player) SettleRound(won bool) int {
	payout := 0
	if won {
		payout = p.staked * 2
		p.chips += payout
	}
	p.staked = 0
	return payout
}

// RoundScore is the value of the cards played this round, as computed by Resolve
func (p *Player) RoundScore() int {
	return p.roundScore
}

// IsRoundWinner reports whether the player's wager came in this round
func (p *Player) IsRoundWinner() bool {
	return p.roundWinner
}

func (p *Player) resetRound() {
	p.roundScore = 0
	p.roundWinner = false
}

// SetPredictions records the player's slate and wager category for the round
func (p *Player) SetPredictions(outcome Outcome, category Category) {
	p.Outcome = outcome
	p.Category = category
}
