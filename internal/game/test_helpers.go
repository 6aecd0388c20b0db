package game

import (
	"github.com/lox/colorbet/internal/card"
)

// TestBoardOption configures test board creation
type TestBoardOption func(*Board)

// WithPlayed puts parsed cards (see card.Parse) straight into a seat's played area
func WithPlayed(seat int, cards string) TestBoardOption {
	return func(b *Board) {
		p := b.players[seat]
		for _, c := range card.MustParse(cards) {
			c.ID = nextTestCardID(b)
			p.played = append(p.played, c)
		}
	}
}

// WithHand puts parsed cards into a seat's hand
func WithHand(seat int, cards string) TestBoardOption {
	return func(b *Board) {
		p := b.players[seat]
		for _, c := range card.MustParse(cards) {
			c.ID = nextTestCardID(b)
			p.hand = append(p.hand, c)
		}
	}
}

// WithPrediction sets a seat's slate and category
func WithPrediction(seat int, outcome Outcome, category Category) TestBoardOption {
	return func(b *Board) { b.players[seat].SetPredictions(outcome, category) }
}

// WithChips sets every player's chip balance
func WithChips(chips int) TestBoardOption {
	return func(b *Board) {
		for _, p := range b.players {
			p.chips = chips
		}
	}
}

// NewTestBoard creates a standard board with the given options applied in order
func NewTestBoard(opts ...TestBoardOption) *Board {
	b := NewStandardBoard()
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func nextTestCardID(b *Board) int {
	highest := -1
	for _, c := range b.retired {
		highest = max(highest, c.ID)
	}
	for _, p := range b.players {
		for _, c := range p.hand {
			highest = max(highest, c.ID)
		}
		for _, c := range p.played {
			highest = max(highest, c.ID)
		}
	}
	return highest + 1
}
