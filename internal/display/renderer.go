// Package display renders the board to a terminal and reads player input.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/colorbet/internal/game"
)

// Renderer writes board and end-game views to a writer
type Renderer struct {
	w      io.Writer
	styles Styles
}

var _ game.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to w with the given theme
func NewRenderer(w io.Writer, theme string) (*Renderer, error) {
	styles, err := NewStyles(w, theme)
	if err != nil {
		return nil, err
	}
	return &Renderer{w: w, styles: styles}, nil
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Message prints a single line of narration
func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.w, r.styles.Message.Render(msg))
}

// RenderBoard prints every team, its players and the retired pile
func (r *Renderer) RenderBoard(s game.BoardSnapshot) error {
	var b strings.Builder

	title := "Board"
	if s.Round > 0 {
		title = fmt.Sprintf("End of round %d", s.Round)
	}
	b.WriteString(r.styles.Header.Render(title))
	b.WriteString("\n\n")

	for _, team := range s.Teams {
		b.WriteString(r.team(team))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Label.Render(fmt.Sprintf("Retired cards (%d)", len(s.Retired))))
	b.WriteString("\n")
	b.WriteString(r.styles.Cards(s.Retired))
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) team(t game.TeamSnapshot) string {
	style := r.styles.TeamStyle(t.ID)
	lines := []string{style.Render(fmt.Sprintf("Team %d  score %d", t.ID+1, t.Score))}

	for _, p := range t.Players {
		lines = append(lines, r.player(p, style))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) player(p game.PlayerSnapshot, style lipgloss.Style) string {
	status := fmt.Sprintf("  %s  chips %d  bet %s on %s  round score %d",
		style.Render(fmt.Sprintf("Player %d", p.ID)),
		p.Chips, p.Outcome, p.Category, p.RoundScore)
	if p.Staked > 0 {
		status += fmt.Sprintf("  staked %d", p.Staked)
	}
	if p.RoundWinner {
		status += "  " + r.styles.Winner.Render("won the round")
	}

	hand := lipgloss.JoinHorizontal(lipgloss.Center,
		r.styles.Label.Render("  hand   "), r.styles.Cards(p.Hand))
	lines := []string{status, hand}
	if len(p.Played) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center,
			r.styles.Label.Render("  played "), r.styles.Cards(p.Played)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderEndGame prints final team scores and the winner
func (r *Renderer) RenderEndGame(s game.BoardSnapshot, result game.GameResult) error {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render("Game over"))
	b.WriteString("\n\n")

	for _, team := range s.Teams {
		style := r.styles.TeamStyle(team.ID)
		b.WriteString(style.Render(fmt.Sprintf("Team %d: %d chips", team.ID+1, team.Score)))
		b.WriteString("\n")
		for _, p := range team.Players {
			fmt.Fprintf(&b, "  Player %d: %d chips\n", p.ID, p.Chips)
		}
	}
	b.WriteString("\n")

	switch {
	case result.Draw:
		b.WriteString(r.styles.Winner.Render(fmt.Sprintf("It's a draw at %d chips!", result.HighScore)))
	case result.WinningTeam >= 0:
		b.WriteString(r.styles.Winner.Render(fmt.Sprintf("Team %d wins with %d chips!", result.WinningTeam+1, result.HighScore)))
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}
