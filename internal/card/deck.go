package card

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

const (
	MinValue       = 1
	MaxValue       = 5
	CopiesPerValue = 5
	DeckSize       = (MaxValue - MinValue + 1) * CopiesPerValue
)

// ErrDeckExhausted is returned when a deal asks for more cards than remain
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is the fixed 20-card deck: five cards of each value 1..5,
// even ids black and odd ids red.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}

	id := 0
	for value := MinValue; value <= MaxValue; value++ {
		for range CopiesPerValue {
			d.cards = append(d.cards, New(id, value, Color(id%2)))
			id++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the undealt cards using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes n cards from the top of the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("deal %d with %d remaining: %w", n, d.CardsRemaining(), ErrDeckExhausted)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// DealHands shuffles a fresh deck and deals perPlayer cards to each of numPlayers.
func DealHands(rng *rand.Rand, numPlayers, perPlayer int) ([][]Card, error) {
	d := NewDeck(rng)
	hands := make([][]Card, numPlayers)
	for i := range hands {
		hand, err := d.Deal(perPlayer)
		if err != nil {
			return nil, fmt.Errorf("dealing to player %d: %w", i+1, err)
		}
		hands[i] = hand
	}
	return hands, nil
}
