package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowPhases     bool // Include state machine transitions (for history files)
	ShowTimestamps bool // Prefix lines with the event time
}

// EventFormatter turns game events into human-readable lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format returns the lines for an event, or nil if the event is not shown
func (ef *EventFormatter) Format(event GameEvent) []string {
	var lines []string

	switch e := event.(type) {
	case RoundStartEvent:
		lines = []string{"", fmt.Sprintf("*** ROUND %d ***", e.Round)}
	case PhaseChangeEvent:
		if !ef.opts.ShowPhases {
			return nil
		}
		lines = []string{fmt.Sprintf("-- %s --", e.To)}
	case WagerEvent:
		lines = []string{ef.FormatWager(e)}
	case CardPlayedEvent:
		lines = []string{fmt.Sprintf("Player %d: plays %s", e.PlayerID, e.Card)}
	case RoundResolvedEvent:
		lines = ef.FormatRound(e.Result)
	case GameEndEvent:
		lines = []string{"", ef.FormatGameEnd(e.Result)}
	default:
		return nil
	}

	if ef.opts.ShowTimestamps {
		stamp := event.Timestamp().Format("15:04:05")
		for i, line := range lines {
			if line != "" {
				lines[i] = stamp + " " + line
			}
		}
	}
	return lines
}

// FormatWager formats one prediction or stake
func (ef *EventFormatter) FormatWager(e WagerEvent) string {
	switch e.Phase {
	case PhaseWagerOutcome:
		return fmt.Sprintf("Player %d: bets %s", e.PlayerID, e.Outcome)
	case PhaseWagerColor:
		return fmt.Sprintf("Player %d: picks %s", e.PlayerID, e.Category)
	case PhaseStaking:
		return fmt.Sprintf("Player %d: stakes %d", e.PlayerID, e.Stake)
	default:
		return fmt.Sprintf("Player %d: wagers during %s", e.PlayerID, e.Phase)
	}
}

// FormatRound summarises totals, category winners and payouts
func (ef *EventFormatter) FormatRound(r RoundResult) []string {
	lines := []string{fmt.Sprintf("--- Round %d resolved ---", r.Round)}

	for team, t := range r.Resolution.Totals {
		lines = append(lines, fmt.Sprintf("Team %d played black %d, red %d, total %d", team+1, t.Black, t.Red, t.Grand))
	}

	categories := make([]string, 0, NumCategories)
	for _, c := range Categories() {
		switch w := r.Resolution.CategoryWinner(c); w {
		case -1:
			categories = append(categories, fmt.Sprintf("%s tied", c))
		default:
			categories = append(categories, fmt.Sprintf("%s to Team %d", c, w+1))
		}
	}
	lines = append(lines, strings.Join(categories, ", "))

	for _, p := range r.Payouts {
		switch {
		case p.Won && p.Credited > 0:
			lines = append(lines, fmt.Sprintf("Player %d: wins %d chips", p.PlayerID, p.Credited))
		case p.Won:
			lines = append(lines, fmt.Sprintf("Player %d: called it, nothing staked", p.PlayerID))
		case p.Staked > 0:
			lines = append(lines, fmt.Sprintf("Player %d: loses %d chips", p.PlayerID, p.Staked))
		default:
			lines = append(lines, fmt.Sprintf("Player %d: missed, nothing staked", p.PlayerID))
		}
	}

	scores := make([]string, 0, len(r.TeamScores))
	for team, score := range r.TeamScores {
		scores = append(scores, fmt.Sprintf("Team %d %d", team+1, score))
	}
	lines = append(lines, "Scores: "+strings.Join(scores, ", "))
	return lines
}

// FormatGameEnd announces the winner or the draw
func (ef *EventFormatter) FormatGameEnd(r GameResult) string {
	if r.Draw || r.WinningTeam < 0 {
		return fmt.Sprintf("Game %s ends in a draw at %d chips", r.GameID, r.HighScore)
	}
	return fmt.Sprintf("Game %s won by Team %d with %d chips", r.GameID, r.WinningTeam+1, r.HighScore)
}

// Narrator forwards formatted events to a renderer as they happen
type Narrator struct {
	renderer  Renderer
	formatter *EventFormatter
}

// NewNarrator creates a subscriber that narrates the game through renderer
func NewNarrator(renderer Renderer, opts FormattingOptions) *Narrator {
	return &Narrator{renderer: renderer, formatter: NewEventFormatter(opts)}
}

// OnEvent implements EventSubscriber
func (n *Narrator) OnEvent(event GameEvent) {
	// The end-game view already announces the result
	if event.EventType() == EventTypeGameEnd {
		return
	}
	for _, line := range n.formatter.Format(event) {
		n.renderer.Message(line)
	}
}
