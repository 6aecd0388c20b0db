package game

import "github.com/lox/colorbet/internal/card"

// PlayerSnapshot is a read-only copy of a player's state for display
type PlayerSnapshot struct {
	Seat        int
	ID          int
	Team        int
	Hand        []card.Card
	Played      []card.Card
	Outcome     Outcome
	Category    Category
	Chips       int
	Staked      int
	RoundScore  int
	RoundWinner bool
}

// TeamSnapshot is a read-only copy of a team
type TeamSnapshot struct {
	ID      int
	Score   int
	Players []PlayerSnapshot
}

// BoardSnapshot is a read-only copy of the whole board handed to renderers
type BoardSnapshot struct {
	Round   int
	Teams   []TeamSnapshot
	Retired []card.Card
}

// Snapshot copies the board so renderers cannot mutate game state
func (b *Board) Snapshot() BoardSnapshot {
	s := BoardSnapshot{
		Teams:   make([]TeamSnapshot, 0, len(b.teams)),
		Retired: append([]card.Card(nil), b.retired...),
	}
	for _, t := range b.teams {
		ts := TeamSnapshot{ID: t.ID, Score: t.Score}
		for _, seat := range t.Members {
			ts.Players = append(ts.Players, b.snapshotPlayer(seat))
		}
		s.Teams = append(s.Teams, ts)
	}
	return s
}

func (b *Board) snapshotPlayer(seat int) PlayerSnapshot {
	p := b.players[seat]
	return PlayerSnapshot{
		Seat:        seat,
		ID:          p.ID,
		Team:        b.seatTeam[seat],
		Hand:        p.Hand(),
		Played:      p.Played(),
		Outcome:     p.Outcome,
		Category:    p.Category,
		Chips:       p.chips,
		Staked:      p.staked,
		RoundScore:  p.roundScore,
		RoundWinner: p.roundWinner,
	}
}
