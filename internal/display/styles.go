package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewStyles
const (
	ThemeColor = "color"
	ThemePlain = "plain"
)

// Styles holds the lipgloss styles used for the board, prompts and messages
type Styles struct {
	Header    lipgloss.Style
	Message   lipgloss.Style
	Team      []lipgloss.Style
	Label     lipgloss.Style
	Winner    lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Prompt    lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

// NewStyles builds styles for w. The plain theme strips all colour.
func NewStyles(w io.Writer, theme string) (Styles, error) {
	r := lipgloss.NewRenderer(w)
	switch theme {
	case ThemeColor, "":
	case ThemePlain:
		r.SetColorProfile(termenv.Ascii)
	default:
		return Styles{}, fmt.Errorf("unknown theme %q", theme)
	}

	card := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Bold(true)

	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Message: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Team: []lipgloss.Style{
			r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
			r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		},
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		RedCard: card.
			Foreground(lipgloss.Color("#FF6B6B")).
			BorderForeground(lipgloss.Color("#FF6B6B")),
		BlackCard: card.
			Foreground(lipgloss.Color("#FAFAFA")).
			BorderForeground(lipgloss.Color("#626262")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
	}, nil
}

// TeamStyle returns the style for a team, cycling if there are more teams than colours
func (s Styles) TeamStyle(team int) lipgloss.Style {
	if len(s.Team) == 0 || team < 0 {
		return s.Label
	}
	return s.Team[team%len(s.Team)]
}
