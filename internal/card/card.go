package card

import (
	"fmt"
	"strings"
)

// Color represents the colour category of a card
type Color int

const (
	Black Color = iota
	Red
)

// String returns the string representation of a colour
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
		return "?"
	}
}

// Symbol returns a single-glyph marker for the colour
func (c Color) Symbol() string {
	switch c {
	case Black:
		return "♠"
	case Red:
		return "♥"
	default:
		return "?"
	}
}

// Card is an id/value/colour triple. The id is unique within a deck.
type Card struct {
	ID    int
	Value int
	Color Color
}

// New creates a new card
func New(id, value int, color Color) Card {
	return Card{ID: id, Value: value, Color: color}
}

// String returns the string representation of a card (e.g., "3♠")
func (c Card) String() string {
	return fmt.Sprintf("%d%s", c.Value, c.Color.Symbol())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Color == Red
}

// Correct overwrites value and colour. Administrative only; normal play never calls it.
func (c *Card) Correct(value int, color Color) {
	c.Value = value
	c.Color = color
}

// Parse parses whitespace separated cards such as "3b 2r 5B".
// Ids are assigned from 0 in input order.
func Parse(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))

	for i, f := range fields {
		if len(f) != 2 {
			return nil, fmt.Errorf("invalid card %q", f)
		}

		value := int(f[0] - '0')
		if value < MinValue || value > MaxValue {
			return nil, fmt.Errorf("invalid value in %q", f)
		}

		var color Color
		switch f[1] {
		case 'b', 'B':
			color = Black
		case 'r', 'R':
			color = Red
		default:
			return nil, fmt.Errorf("invalid colour in %q", f)
		}

		cards = append(cards, New(i, value, color))
	}

	return cards, nil
}

// MustParse is like Parse but panics on error
func MustParse(s string) []Card {
	cards, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// Sum returns the total value of the given cards
func Sum(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value
	}
	return total
}

// SumColor returns the total value of the cards with the given colour
func SumColor(cards []Card, color Color) int {
	total := 0
	for _, c := range cards {
		if c.Color == color {
			total += c.Value
		}
	}
	return total
}
