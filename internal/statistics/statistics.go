// Package statistics aggregates the results of many games.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/lox/colorbet/internal/game"
)

// Series tracks a running sample of values
type Series struct {
	N      int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation
}

// Add records one value
func (s *Series) Add(v float64) {
	s.N++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Merge folds another series into s
func (s *Series) Merge(o Series) {
	s.N += o.N
	s.Sum += o.Sum
	s.Sum2 += o.Sum2
	s.Values = append(s.Values, o.Values...)
}

// Mean returns the arithmetic mean
func (s *Series) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Series) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation
func (s *Series) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Series) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Series) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value
func (s *Series) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Series) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// CategoryStats counts how often a category was chosen and how often the chooser won the round
type CategoryStats struct {
	Plays int
	Wins  int
}

// WinRate returns the fraction of plays that won
func (c CategoryStats) WinRate() float64 {
	if c.Plays == 0 {
		return 0
	}
	return float64(c.Wins) / float64(c.Plays)
}

// Summary aggregates many game results
type Summary struct {
	Games    int
	Draws    int
	TeamWins [game.NumTeams]int

	// Final team scores per game
	TeamScores [game.NumTeams]Series

	Rounds         int
	Categories     [game.NumCategories]CategoryStats
	TiedCategories int // category totals equal between the teams

	// Chip ledger across all rounds
	Staked   int
	Credited int
}

// Add incorporates a finished game
func (s *Summary) Add(result game.GameResult) {
	s.Games++
	if result.Draw {
		s.Draws++
	} else if result.WinningTeam >= 0 && result.WinningTeam < game.NumTeams {
		s.TeamWins[result.WinningTeam]++
	}

	for team := 0; team < game.NumTeams && team < len(result.TeamScores); team++ {
		s.TeamScores[team].Add(float64(result.TeamScores[team]))
	}

	for _, round := range result.Rounds {
		s.Rounds++
		for seat, pred := range round.Predictions {
			c := pred.Category
			if c < 0 || int(c) >= game.NumCategories {
				continue
			}
			s.Categories[c].Plays++
			if seat < len(round.Resolution.Winners) && round.Resolution.Winners[seat] {
				s.Categories[c].Wins++
			}
		}
		for _, c := range game.Categories() {
			if round.Resolution.CategoryWinner(c) < 0 {
				s.TiedCategories++
			}
		}
		for _, p := range round.Payouts {
			s.Staked += p.Staked
			s.Credited += p.Credited
		}
	}
}

// Merge folds another summary into s
func (s *Summary) Merge(o *Summary) {
	s.Games += o.Games
	s.Draws += o.Draws
	s.Rounds += o.Rounds
	s.TiedCategories += o.TiedCategories
	s.Staked += o.Staked
	s.Credited += o.Credited
	for i := range s.TeamWins {
		s.TeamWins[i] += o.TeamWins[i]
		s.TeamScores[i].Merge(o.TeamScores[i])
	}
	for i := range s.Categories {
		s.Categories[i].Plays += o.Categories[i].Plays
		s.Categories[i].Wins += o.Categories[i].Wins
	}
}

// WinRate returns the fraction of games a team won
func (s *Summary) WinRate(team int) float64 {
	if s.Games == 0 || team < 0 || team >= game.NumTeams {
		return 0
	}
	return float64(s.TeamWins[team]) / float64(s.Games)
}

// DrawRate returns the fraction of games that were drawn
func (s *Summary) DrawRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Games)
}

// Validate checks that the summary's counts agree with each other
func (s *Summary) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	decided := s.Draws
	for _, w := range s.TeamWins {
		decided += w
	}
	if decided != s.Games {
		return fmt.Errorf("wins plus draws (%d) does not match games (%d)", decided, s.Games)
	}

	for team, series := range s.TeamScores {
		if series.N != s.Games {
			return fmt.Errorf("team %d has %d scores for %d games", team+1, series.N, s.Games)
		}
		if len(series.Values) != series.N {
			return fmt.Errorf("team %d values length (%d) does not match count (%d)", team+1, len(series.Values), series.N)
		}
	}

	plays := 0
	for _, c := range game.Categories() {
		stats := s.Categories[c]
		if stats.Wins > stats.Plays {
			return fmt.Errorf("%s wins (%d) exceed plays (%d)", c, stats.Wins, stats.Plays)
		}
		plays += stats.Plays
	}
	if plays != s.Rounds*game.NumPlayers {
		return fmt.Errorf("category plays (%d) does not match %d rounds of %d players", plays, s.Rounds, game.NumPlayers)
	}
	if s.TiedCategories > s.Rounds*game.NumCategories {
		return fmt.Errorf("tied categories (%d) exceed categories resolved (%d)", s.TiedCategories, s.Rounds*game.NumCategories)
	}

	return nil
}

// Collector builds a Summary from GameEndEvents
type Collector struct {
	mu      sync.Mutex
	summary Summary
}

var _ game.EventSubscriber = (*Collector)(nil)

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// OnEvent records finished games and ignores everything else
func (c *Collector) OnEvent(event game.GameEvent) {
	end, ok := event.(game.GameEndEvent)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary.Add(end.Result)
}

// Summary returns a copy of the results so far
func (c *Collector) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.summary
	for i := range s.TeamScores {
		s.TeamScores[i].Values = append([]float64(nil), c.summary.TeamScores[i].Values...)
	}
	return s
}
