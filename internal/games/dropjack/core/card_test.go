package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
)

func TestCardValues(t *testing.T) {
	tests := []struct {
		rank core.Rank
		want []int
	}{
		{core.Ace, []int{1, 11}},
		{core.Two, []int{2}},
		{core.Nine, []int{9}},
		{core.Ten, []int{10}},
		{core.Jack, []int{10}},
		{core.Queen, []int{10}},
		{core.King, []int{10}},
	}
	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, core.NewCard(core.Clubs, tt.rank).Values())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "10♥", core.NewCard(core.Hearts, core.Ten).String())
	assert.Equal(t, "A♠", core.NewCard(core.Spades, core.Ace).String())
	assert.Equal(t, "K♦", core.NewCard(core.Diamonds, core.King).String())
	assert.Equal(t, "7♣", core.NewCard(core.Clubs, core.Seven).String())
}

func TestSuitColor(t *testing.T) {
	assert.True(t, core.Hearts.IsRed())
	assert.True(t, core.Diamonds.IsRed())
	assert.False(t, core.Spades.IsRed())
	assert.False(t, core.Clubs.IsRed())
}

func assertFullDeck(t *testing.T, cards []core.Card) {
	t.Helper()
	require.Len(t, cards, core.DeckSize)

	bySuit := map[core.Suit]int{}
	byRank := map[core.Rank]int{}
	seen := map[core.Card]bool{}
	for _, c := range cards {
		bySuit[c.Suit]++
		byRank[c.Rank]++
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	for _, s := range core.Suits {
		assert.Equal(t, 13, bySuit[s], "suit %s", s)
	}
	for _, r := range core.Ranks {
		assert.Equal(t, 4, byRank[r], "rank %s", r)
	}
}

func TestNewDeckIsComplete(t *testing.T) {
	assertFullDeck(t, core.NewDeck().Cards())
}

func TestDeckDrawAndReset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := core.NewDeck()
	d.Shuffle(rng)
	assertFullDeck(t, d.Cards())

	for i := 0; i < core.DeckSize; i++ {
		_, ok := d.Draw()
		require.True(t, ok, "draw %d", i)
	}
	assert.True(t, d.IsEmpty())
	_, ok := d.Draw()
	assert.False(t, ok)

	d.Reset(rng)
	assert.Equal(t, core.DeckSize, d.Len())
	assertFullDeck(t, d.Cards())
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	a, b := core.NewDeck(), core.NewDeck()
	a.Shuffle(rand.New(rand.NewSource(42)))
	b.Shuffle(rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Cards(), b.Cards())
	assert.NotEqual(t, core.NewDeck().Cards(), a.Cards())
}

func TestDrawPopsFromTop(t *testing.T) {
	d := core.NewDeck()
	c, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, core.NewCard(core.Clubs, core.King), c)
	assert.Equal(t, core.DeckSize-1, d.Len())
}

func TestParseDifficulty(t *testing.T) {
	d, err := core.ParseDifficulty("HARD")
	require.NoError(t, err)
	assert.Equal(t, core.Hard, d)

	d, err = core.ParseDifficulty(" easy ")
	require.NoError(t, err)
	assert.Equal(t, core.Easy, d)

	_, err = core.ParseDifficulty("nightmare")
	assert.Error(t, err)

	assert.Equal(t, core.Hard, core.Easy.Toggle())
	assert.Equal(t, core.Easy, core.Hard.Toggle())
}
