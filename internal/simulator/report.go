package simulator

import (
	"fmt"
	"io"

	"github.com/lox/colorbet/internal/game"
	"github.com/lox/colorbet/internal/statistics"
)

// PrintSummary writes a report of simulation results
func PrintSummary(w io.Writer, s *statistics.Summary, seed int64) {
	fmt.Fprintf(w, "\n=== SIMULATION RESULTS ===\n")
	fmt.Fprintf(w, "Games played: %d (%d rounds)\n", s.Games, s.Rounds)
	fmt.Fprintf(w, "Base seed: %d\n", seed)

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	for team := range game.NumTeams {
		fmt.Fprintf(w, "Team %d wins: %d (%.1f%%)\n", team+1, s.TeamWins[team], s.WinRate(team)*100)
	}
	fmt.Fprintf(w, "Draws: %d (%.1f%%)\n", s.Draws, s.DrawRate()*100)

	fmt.Fprintf(w, "\n=== FINAL TEAM SCORES ===\n")
	for team := range game.NumTeams {
		series := s.TeamScores[team]
		low, high := series.ConfidenceInterval95()
		fmt.Fprintf(w, "Team %d: mean %.2f, median %.1f, std dev %.2f, 95%% CI [%.2f, %.2f]\n",
			team+1, series.Mean(), series.Median(), series.StdDev(), low, high)
	}

	fmt.Fprintf(w, "\n=== CATEGORIES ===\n")
	for _, c := range game.Categories() {
		stats := s.Categories[c]
		fmt.Fprintf(w, "%-10s %6d plays, %6d round wins (%.1f%%)\n", c, stats.Plays, stats.Wins, stats.WinRate()*100)
	}
	if s.Rounds > 0 {
		resolved := s.Rounds * game.NumCategories
		fmt.Fprintf(w, "Tied categories: %d of %d (%.1f%%)\n",
			s.TiedCategories, resolved, float64(s.TiedCategories)/float64(resolved)*100)
	}

	fmt.Fprintf(w, "\n=== CHIPS ===\n")
	fmt.Fprintf(w, "Staked: %d, paid out: %d, net created: %d\n", s.Staked, s.Credited, s.Credited-s.Staked)
}
