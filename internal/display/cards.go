package display

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/colorbet/internal/card"
)

// CardsPerRow is how many cards are drawn side by side before wrapping
const CardsPerRow = 5

// Card draws a single bordered card
func (s Styles) Card(c card.Card) string {
	if c.IsRed() {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}

// Cards draws cards side by side, wrapping every CardsPerRow cards
func (s Styles) Cards(cards []card.Card) string {
	if len(cards) == 0 {
		return s.Label.Render("(none)")
	}

	var rows []string
	for start := 0; start < len(cards); start += CardsPerRow {
		end := min(start+CardsPerRow, len(cards))
		boxes := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			boxes = append(boxes, s.Card(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// IndexedCards draws a hand with each card's index underneath, for card prompts
func (s Styles) IndexedCards(cards []card.Card) string {
	if len(cards) == 0 {
		return s.Label.Render("(no cards)")
	}

	cols := make([]string, 0, len(cards))
	for i, c := range cards {
		box := s.Card(c)
		width := lipgloss.Width(box)
		label := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.Label.Render(strconv.Itoa(i)))
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, box, label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
