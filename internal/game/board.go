package game

import (
	"fmt"

	"github.com/lox/colorbet/internal/card"
)

const (
	NumPlayers = 4
	NumTeams   = 2
)

// StandardSeating puts seats 0 and 2 on the first team and seats 1 and 3 on the second
var StandardSeating = [][]int{{0, 2}, {1, 3}}

// Team groups players by seat. Score is a snapshot of the members' chip
// balances, refreshed after every round.
type Team struct {
	ID      int
	Members []int // seats, in member order
	Score   int
}

// Board owns every player (indexed by seat), the teams that reference
// them, and the cards retired from play.
type Board struct {
	players  []*Player
	teams    []*Team
	seatTeam []int
	retired  []card.Card
}

// NewBoard creates a board for the given seating. Every seat from 0 to
// the number of seated players minus one must appear exactly once.
func NewBoard(seating [][]int) (*Board, error) {
	seats := 0
	for _, members := range seating {
		seats += len(members)
	}
	if len(seating) == 0 || seats == 0 {
		return nil, fmt.Errorf("no seats: %w", ErrInvalidSeating)
	}

	b := &Board{
		players:  make([]*Player, seats),
		teams:    make([]*Team, 0, len(seating)),
		seatTeam: make([]int, seats),
	}
	for seat := range b.players {
		b.players[seat] = NewPlayer(seat + 1)
		b.seatTeam[seat] = -1
	}

	for teamID, members := range seating {
		if len(members) == 0 {
			return nil, fmt.Errorf("team %d has no members: %w", teamID, ErrInvalidSeating)
		}
		for _, seat := range members {
			if seat < 0 || seat >= seats {
				return nil, fmt.Errorf("seat %d: %w", seat, ErrInvalidSeating)
			}
			if b.seatTeam[seat] != -1 {
				return nil, fmt.Errorf("seat %d assigned twice: %w", seat, ErrInvalidSeating)
			}
			b.seatTeam[seat] = teamID
		}
		b.teams = append(b.teams, &Team{ID: teamID, Members: append([]int(nil), members...)})
	}

	return b, nil
}

// NewStandardBoard creates the four-player, two-team board
func NewStandardBoard() *Board {
	b, err := NewBoard(StandardSeating)
	if err != nil {
		panic(err)
	}
	return b
}

// TeamCount returns the number of teams
func (b *Board) TeamCount() int {
	return len(b.teams)
}

func (b *Board) team(teamID int) (*Team, error) {
	if teamID < 0 || teamID >= len(b.teams) {
		return nil, fmt.Errorf("team %d: %w", teamID, ErrInvalidTeam)
	}
	return b.teams[teamID], nil
}

// PlayersInTeam returns the number of members of a team
func (b *Board) PlayersInTeam(teamID int) (int, error) {
	t, err := b.team(teamID)
	if err != nil {
		return 0, err
	}
	return len(t.Members), nil
}

// PlayerAt returns a team's member by member index
func (b *Board) PlayerAt(teamID, member int) (*Player, error) {
	t, err := b.team(teamID)
	if err != nil {
		return nil, err
	}
	if member < 0 || member >= len(t.Members) {
		return nil, fmt.Errorf("team %d member %d: %w", teamID, member, ErrInvalidIndex)
	}
	return b.players[t.Members[member]], nil
}

// Seat returns the player sitting at seat
func (b *Board) Seat(seat int) (*Player, error) {
	if seat < 0 || seat >= len(b.players) {
		return nil, fmt.Errorf("seat %d: %w", seat, ErrInvalidIndex)
	}
	return b.players[seat], nil
}

// SeatCount returns the number of seated players
func (b *Board) SeatCount() int {
	return len(b.players)
}

// Players returns the players in seat order
func (b *Board) Players() []*Player {
	return append([]*Player(nil), b.players...)
}

// TeamOf returns the team a seat belongs to
func (b *Board) TeamOf(seat int) (int, error) {
	if seat < 0 || seat >= len(b.seatTeam) {
		return 0, fmt.Errorf("seat %d: %w", seat, ErrInvalidIndex)
	}
	return b.seatTeam[seat], nil
}

// Members returns a copy of a team's seats
func (b *Board) Members(teamID int) ([]int, error) {
	t, err := b.team(teamID)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), t.Members...), nil
}

// TeamScore returns a team's score
func (b *Board) TeamScore(teamID int) (int, error) {
	t, err := b.team(teamID)
	if err != nil {
		return 0, err
	}
	return t.Score, nil
}

// SetTeamScore overwrites a team's score
func (b *Board) SetTeamScore(teamID, score int) error {
	t, err := b.team(teamID)
	if err != nil {
		return err
	}
	t.Score = score
	return nil
}

// UpdateTeamScores sets each team's score to the sum of its members' chip balances
func (b *Board) UpdateTeamScores() {
	for _, t := range b.teams {
		score := 0
		for _, seat := range t.Members {
			score += b.players[seat].Chips()
		}
		t.Score = score
	}
}

// RetireCard moves a card out of play
func (b *Board) RetireCard(c card.Card) {
	b.retired = append(b.retired, c)
}

// RetiredCardAt returns the retired card at index
func (b *Board) RetiredCardAt(index int) (card.Card, error) {
	if index < 0 || index >= len(b.retired) {
		return card.Card{}, fmt.Errorf("retired index %d: %w", index, ErrInvalidIndex)
	}
	return b.retired[index], nil
}

// RetiredCardCount returns the number of retired cards
func (b *Board) RetiredCardCount() int {
	return len(b.retired)
}

// RemoveRetiredCard takes a card back off the retired list
func (b *Board) RemoveRetiredCard(index int) (card.Card, error) {
	c, err := b.RetiredCardAt(index)
	if err != nil {
		return card.Card{}, err
	}
	b.retired = append(b.retired[:index], b.retired[index+1:]...)
	return c, nil
}

// RetirePlayedCards moves every player's played cards onto the retired list,
// seat by seat, each player's highest index first.
func (b *Board) RetirePlayedCards() int {
	moved := 0
	for _, p := range b.players {
		for _, c := range p.RetirePlayedCards() {
			b.RetireCard(c)
			moved++
		}
	}
	return moved
}

// CardCount returns the number of cards held anywhere on the board
func (b *Board) CardCount() int {
	total := len(b.retired)
	for _, p := range b.players {
		total += p.HandSize() + p.PlayedSize()
	}
	return total
}

// ValidateCardConservation checks that no dealt card was lost or duplicated
func (b *Board) ValidateCardConservation(dealt int) error {
	seen := make(map[int]bool, dealt)
	check := func(cards []card.Card) error {
		for _, c := range cards {
			if seen[c.ID] {
				return fmt.Errorf("card %d held twice: %w", c.ID, ErrCardConservation)
			}
			seen[c.ID] = true
		}
		return nil
	}

	if err := check(b.retired); err != nil {
		return err
	}
	for _, p := range b.players {
		if err := check(p.hand); err != nil {
			return err
		}
		if err := check(p.played); err != nil {
			return err
		}
	}

	if len(seen) != dealt {
		return fmt.Errorf("expected %d cards, found %d: %w", dealt, len(seen), ErrCardConservation)
	}
	return nil
}
