package card

import (
	"testing"

	"github.com/lox/colorbet/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	d := NewDeck(randutil.New(42))
	require.Equal(t, DeckSize, d.CardsRemaining())

	cards, err := d.Deal(DeckSize)
	require.NoError(t, err)

	perValue := map[int]int{}
	perColor := map[Color]int{}
	ids := map[int]bool{}
	for _, c := range cards {
		perValue[c.Value]++
		perColor[c.Color]++
		assert.False(t, ids[c.ID], "duplicate id %d", c.ID)
		ids[c.ID] = true
		assert.Equal(t, Color(c.ID%2), c.Color)
	}

	for v := MinValue; v <= MaxValue; v++ {
		assert.Equal(t, CopiesPerValue, perValue[v], "value %d", v)
	}
	assert.Equal(t, DeckSize/2, perColor[Black])
	assert.Equal(t, DeckSize/2, perColor[Red])
	assert.Zero(t, d.CardsRemaining())
}

func TestDeckDealExhausted(t *testing.T) {
	d := NewDeck(randutil.New(1))
	_, err := d.Deal(DeckSize - 1)
	require.NoError(t, err)

	_, err = d.Deal(2)
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, 1, d.CardsRemaining())
}

func TestDeckDeterministic(t *testing.T) {
	a, err := NewDeck(randutil.New(7)).Deal(DeckSize)
	require.NoError(t, err)
	b, err := NewDeck(randutil.New(7)).Deal(DeckSize)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDealHandsDisjointAndExhaustive(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		hands, err := DealHands(randutil.New(seed), 4, 5)
		require.NoError(t, err)
		require.Len(t, hands, 4)

		seen := map[int]bool{}
		for _, hand := range hands {
			require.Len(t, hand, 5)
			for _, c := range hand {
				require.False(t, seen[c.ID], "seed %d: id %d dealt twice", seed, c.ID)
				seen[c.ID] = true
			}
		}
		for id := range DeckSize {
			assert.True(t, seen[id], "seed %d: id %d missing", seed, id)
		}
	}
}

func TestDealHandsTooMany(t *testing.T) {
	_, err := DealHands(randutil.New(3), 5, 5)
	assert.ErrorIs(t, err, ErrDeckExhausted)
}
