package game

import (
	"testing"

	"github.com/lox/colorbet/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBoardSeating(t *testing.T) {
	b := NewStandardBoard()

	assert.Equal(t, 2, b.TeamCount())
	assert.Equal(t, 4, b.SeatCount())

	for teamID, seats := range [][]int{{0, 2}, {1, 3}} {
		n, err := b.PlayersInTeam(teamID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		for member, seat := range seats {
			p, err := b.PlayerAt(teamID, member)
			require.NoError(t, err)
			assert.Equal(t, seat+1, p.ID)

			bySeat, err := b.Seat(seat)
			require.NoError(t, err)
			assert.Same(t, p, bySeat, "team and seat must share one player")

			team, err := b.TeamOf(seat)
			require.NoError(t, err)
			assert.Equal(t, teamID, team)
		}
	}
}

func TestBoardInvalidIndexes(t *testing.T) {
	b := NewStandardBoard()

	_, err := b.PlayersInTeam(2)
	assert.ErrorIs(t, err, ErrInvalidTeam)
	_, err = b.PlayerAt(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidTeam)
	_, err = b.PlayerAt(0, 2)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = b.Seat(4)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = b.TeamScore(5)
	assert.ErrorIs(t, err, ErrInvalidTeam)
	assert.ErrorIs(t, b.SetTeamScore(5, 1), ErrInvalidTeam)
	_, err = b.RetiredCardAt(0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestNewBoardRejectsBadSeating(t *testing.T) {
	tests := map[string][][]int{
		"empty":        {},
		"duplicate":    {{0, 1}, {1, 2}},
		"out of range": {{0, 5}, {1, 2}},
		"empty team":   {{0, 1}, {}},
	}
	for name, seating := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewBoard(seating)
			assert.ErrorIs(t, err, ErrInvalidSeating)
		})
	}
}

func TestBoardTeamScores(t *testing.T) {
	b := NewTestBoard(WithChips(20))
	p, _ := b.Seat(0)
	require.NoError(t, p.SetChips(35))

	b.UpdateTeamScores()

	score, err := b.TeamScore(0)
	require.NoError(t, err)
	assert.Equal(t, 55, score)
	score, err = b.TeamScore(1)
	require.NoError(t, err)
	assert.Equal(t, 40, score)

	require.NoError(t, b.SetTeamScore(1, 7))
	score, _ = b.TeamScore(1)
	assert.Equal(t, 7, score)
}

func TestBoardRetiredCards(t *testing.T) {
	b := NewStandardBoard()
	b.RetireCard(card.New(4, 2, card.Black))
	b.RetireCard(card.New(5, 3, card.Red))

	assert.Equal(t, 2, b.RetiredCardCount())
	c, err := b.RetiredCardAt(1)
	require.NoError(t, err)
	assert.Equal(t, 5, c.ID)

	removed, err := b.RemoveRetiredCard(0)
	require.NoError(t, err)
	assert.Equal(t, 4, removed.ID)
	assert.Equal(t, 1, b.RetiredCardCount())
}

func TestBoardRetirePlayedCards(t *testing.T) {
	b := NewTestBoard(
		WithPlayed(0, "1b 2b"),
		WithPlayed(1, "3r"),
		WithPlayed(3, "4r 5b"),
		WithHand(2, "1r"),
	)

	moved := b.RetirePlayedCards()
	assert.Equal(t, 5, moved)
	assert.Equal(t, 5, b.RetiredCardCount())

	var values []int
	for i := range b.RetiredCardCount() {
		c, err := b.RetiredCardAt(i)
		require.NoError(t, err)
		values = append(values, c.Value)
	}
	assert.Equal(t, []int{2, 1, 3, 5, 4}, values)

	for _, p := range b.Players() {
		assert.Zero(t, p.PlayedSize())
	}
	assert.Equal(t, 6, b.CardCount())
	assert.NoError(t, b.ValidateCardConservation(6))
}

func TestBoardCardConservation(t *testing.T) {
	b := NewTestBoard(WithHand(0, "1b 2r"), WithPlayed(1, "3b"))
	assert.NoError(t, b.ValidateCardConservation(3))
	assert.ErrorIs(t, b.ValidateCardConservation(4), ErrCardConservation)

	c, _ := b.players[0].CardInHand(0)
	b.RetireCard(c)
	assert.ErrorIs(t, b.ValidateCardConservation(4), ErrCardConservation)
}

func TestBoardSnapshotIsDetached(t *testing.T) {
	b := NewTestBoard(WithHand(0, "1b 2r"), WithChips(20))
	snap := b.Snapshot()

	require.Len(t, snap.Teams, 2)
	require.Len(t, snap.Teams[0].Players, 2)
	assert.Equal(t, 1, snap.Teams[0].Players[0].ID)
	assert.Equal(t, 3, snap.Teams[0].Players[1].ID)
	assert.Equal(t, 2, snap.Teams[1].Players[0].ID)

	snap.Teams[0].Players[0].Hand[0].Value = 5
	c, _ := b.players[0].CardInHand(0)
	assert.Equal(t, 1, c.Value)
}
