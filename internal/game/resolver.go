package game

import (
	"fmt"

	"github.com/lox/colorbet/internal/card"
)

// TiePolicy decides who takes a category when both teams' totals are equal
type TiePolicy int

const (
	// TieNegation gives a tied category to the second team: the first team
	// wins only on a strictly greater total and the second team's result is
	// the negation of the first team's.
	TieNegation TiePolicy = iota
	// TieNeutral gives a tied category to nobody.
	TieNeutral
)

// String returns the configuration name of a tie policy
func (tp TiePolicy) String() string {
	switch tp {
	case TieNegation:
		return "negation"
	case TieNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// ParseTiePolicy parses a tie policy name
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch s {
	case "negation", "":
		return TieNegation, nil
	case "neutral":
		return TieNeutral, nil
	default:
		return TieNegation, fmt.Errorf("unknown tie policy %q", s)
	}
}

// Totals holds a team's played-card sums for one round
type Totals struct {
	Black int
	Red   int
	Grand int
}

// For returns the total that decides the given category
func (t Totals) For(c Category) int {
	switch c {
	case CategoryBlack:
		return t.Black
	case CategoryRed:
		return t.Red
	default:
		return t.Grand
	}
}

// Resolution is the outcome of resolving one round
type Resolution struct {
	Policy TiePolicy
	// Totals per team
	Totals [NumTeams]Totals
	// FirstTeamWins is true per category when the first team's total is
	// strictly greater than the second's
	FirstTeamWins [NumCategories]bool
	// PlayerScores and Winners are indexed by seat
	PlayerScores []int
	Winners      []bool
}

// TeamWins reports whether a team is credited with a category
func (r Resolution) TeamWins(c Category, teamID int) bool {
	if teamID == 0 {
		return r.FirstTeamWins[c]
	}
	if r.Policy == TieNeutral {
		return r.Totals[1].For(c) > r.Totals[0].For(c)
	}
	return !r.FirstTeamWins[c]
}

// CategoryWinner returns the team with the strictly higher total, or -1 on a tie
func (r Resolution) CategoryWinner(c Category) int {
	a, b := r.Totals[0].For(c), r.Totals[1].For(c)
	switch {
	case a > b:
		return 0
	case b > a:
		return 1
	default:
		return -1
	}
}

// Resolve scores the round from the players' played cards and predictions.
// It reads the board only; ApplyResolution writes the results back.
func Resolve(b *Board, policy TiePolicy) (Resolution, error) {
	if b.TeamCount() != NumTeams {
		return Resolution{}, fmt.Errorf("resolving with %d teams: %w", b.TeamCount(), ErrInvalidTeam)
	}

	r := Resolution{
		Policy:       policy,
		PlayerScores: make([]int, len(b.players)),
		Winners:      make([]bool, len(b.players)),
	}

	for teamID, t := range b.teams {
		for _, seat := range t.Members {
			played := b.players[seat].played
			r.Totals[teamID].Black += card.SumColor(played, card.Black)
			r.Totals[teamID].Red += card.SumColor(played, card.Red)
			r.Totals[teamID].Grand += card.Sum(played)
			r.PlayerScores[seat] = card.Sum(played)
		}
	}

	for _, c := range Categories() {
		r.FirstTeamWins[c] = r.Totals[0].For(c) > r.Totals[1].For(c)
	}

	for seat, p := range b.players {
		teamWon := r.TeamWins(p.Category, b.seatTeam[seat])
		predictedWin := p.Outcome == Win
		r.Winners[seat] = predictedWin == teamWon
	}

	return r, nil
}

// ApplyResolution clears each player's round bookkeeping and records the
// resolved score and winner flag
func ApplyResolution(b *Board, r Resolution) error {
	if len(r.PlayerScores) != len(b.players) || len(r.Winners) != len(b.players) {
		return fmt.Errorf("resolution for %d seats on a %d seat board: %w", len(r.Winners), len(b.players), ErrInvalidIndex)
	}
	for _, p := range b.players {
		p.resetRound()
	}
	for seat, p := range b.players {
		p.roundScore = r.PlayerScores[seat]
		p.roundWinner = r.Winners[seat]
	}
	return nil
}
