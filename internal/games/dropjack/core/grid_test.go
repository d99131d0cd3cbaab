package core_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func c(s core.Suit, r core.Rank) core.Card {
	return core.NewCard(s, r)
}

func TestBoardBounds(t *testing.T) {
	b := core.NewBoard(10, 15)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 15, b.Height())

	assert.True(t, b.IsValid(0, 0))
	assert.True(t, b.IsValid(9, 14))
	assert.False(t, b.IsValid(-1, 0))
	assert.False(t, b.IsValid(10, 0))
	assert.False(t, b.IsValid(0, 15))

	assert.True(t, b.IsEmpty(3, 3))
	assert.False(t, b.IsEmpty(-1, 3), "invalid cells are never empty")
	assert.False(t, b.IsEmpty(3, 99))
}

func TestBoardPlaceAndRemove(t *testing.T) {
	b := core.NewBoard(4, 4)
	seven := c(core.Hearts, core.Seven)

	require.True(t, b.Place(1, 2, seven))
	assert.False(t, b.IsEmpty(1, 2))

	assert.False(t, b.Place(1, 2, c(core.Spades, core.King)), "occupied cell")
	got, ok := b.Get(1, 2)
	require.True(t, ok)
	assert.Equal(t, seven, got, "failed place must not overwrite")

	assert.False(t, b.Place(4, 0, seven), "out of bounds")

	removed, ok := b.Remove(1, 2)
	require.True(t, ok)
	assert.Equal(t, seven, removed)
	assert.True(t, b.IsEmpty(1, 2))

	_, ok = b.Remove(1, 2)
	assert.False(t, ok, "removing an empty cell")
	_, ok = b.Remove(-3, 0)
	assert.False(t, ok, "removing an invalid cell")
}

func TestBoardMarksOnlyOccupiedCells(t *testing.T) {
	b := core.NewBoard(3, 3)
	b.Place(0, 2, c(core.Clubs, core.Two))

	b.MarkForRemoval([]core.Pos{core.P(0, 2), core.P(1, 2), core.P(7, 7)}, epoch)

	assert.True(t, b.IsMarked(0, 2))
	assert.False(t, b.IsMarked(1, 2))
	assert.Equal(t, 1, b.MarkCount())

	later := epoch.Add(time.Second)
	b.MarkForRemoval([]core.Pos{core.P(0, 2)}, later)
	deadline, ok := b.MarkDeadline(0, 2)
	require.True(t, ok)
	assert.Equal(t, later, deadline, "marks are overwritten")
}

func TestBoardCollectMatured(t *testing.T) {
	b := core.NewBoard(3, 3)
	b.Place(0, 2, c(core.Clubs, core.Two))
	b.Place(1, 2, c(core.Clubs, core.Three))
	b.Place(2, 2, c(core.Clubs, core.Four))

	b.MarkForRemoval([]core.Pos{core.P(0, 2)}, epoch)
	b.MarkForRemoval([]core.Pos{core.P(1, 2)}, epoch.Add(100*time.Millisecond))

	assert.Empty(t, b.CollectMatured(epoch.Add(-time.Millisecond)))

	got := b.CollectMatured(epoch)
	require.Len(t, got, 1)
	assert.Equal(t, core.P(0, 2), got[0].Pos)
	assert.Equal(t, c(core.Clubs, core.Two), got[0].Card)
	assert.True(t, b.IsEmpty(0, 2))
	assert.True(t, b.IsMarked(1, 2), "unmatured mark untouched")

	got = b.CollectMatured(epoch.Add(time.Hour))
	require.Len(t, got, 1)
	assert.Equal(t, core.P(1, 2), got[0].Pos)
	assert.Zero(t, b.MarkCount())
	assert.False(t, b.IsEmpty(2, 2), "unmarked card stays")
}

func TestBoardInsertPushesStackUp(t *testing.T) {
	b := core.NewBoard(2, 4)
	low := c(core.Clubs, core.Two)
	high := c(core.Hearts, core.Nine)
	b.Place(0, 3, low)
	b.Place(0, 2, high)
	b.MarkForRemoval([]core.Pos{core.P(0, 3)}, epoch)

	dropped := c(core.Spades, core.Five)
	require.True(t, b.Insert(0, 3, dropped))

	for y, want := range map[int]core.Card{3: dropped, 2: low, 1: high} {
		got, ok := b.Get(0, y)
		require.True(t, ok, "row %d", y)
		assert.Equal(t, want, got, "row %d", y)
	}
	assert.True(t, b.IsEmpty(0, 0))
	assert.False(t, b.IsMarked(0, 3), "inserted card carries no mark")
	assert.True(t, b.IsMarked(0, 2), "mark moved with its card")

	require.True(t, b.Insert(1, 3, dropped), "empty cell is a plain place")
	assert.Equal(t, 4, b.Count())
}

func TestBoardInsertFullColumn(t *testing.T) {
	b := core.NewBoard(1, 2)
	b.Place(0, 0, c(core.Clubs, core.Two))
	b.Place(0, 1, c(core.Clubs, core.Three))

	assert.False(t, b.Insert(0, 1, c(core.Clubs, core.Four)))
	assert.False(t, b.Insert(3, 0, c(core.Clubs, core.Four)), "out of bounds")
	got, _ := b.Get(0, 1)
	assert.Equal(t, c(core.Clubs, core.Three), got)
}

func TestApplyGravityCompactsColumns(t *testing.T) {
	b := core.NewBoard(2, 5)
	top := c(core.Hearts, core.Ace)
	mid := c(core.Spades, core.Five)
	b.Place(0, 0, top)
	b.Place(0, 2, mid)
	b.Place(1, 4, c(core.Clubs, core.Nine))

	require.True(t, b.ApplyGravity())

	got, ok := b.Get(0, 4)
	require.True(t, ok)
	assert.Equal(t, mid, got, "lower card lands first")
	got, ok = b.Get(0, 3)
	require.True(t, ok)
	assert.Equal(t, top, got, "order is preserved")
	assert.True(t, b.IsEmpty(0, 0))
	assert.True(t, b.IsEmpty(0, 2))

	motions := b.Motions()
	require.Len(t, motions, 2)
	assert.Equal(t, core.Motion{Card: mid, X: 0, FromY: 2, ToY: 4, Settled: true}, motions[0])
	assert.Equal(t, core.Motion{Card: top, X: 0, FromY: 0, ToY: 3, Settled: false}, motions[1])
}

func TestApplyGravityMotionSettledOnStillCard(t *testing.T) {
	b := core.NewBoard(1, 4)
	b.Place(0, 3, c(core.Hearts, core.Two))
	b.Place(0, 0, c(core.Hearts, core.Three))

	require.True(t, b.ApplyGravity())
	motions := b.Motions()
	require.Len(t, motions, 1)
	assert.True(t, motions[0].Settled, "landed on a card that did not move")
}

func TestApplyGravityIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		b := core.NewBoard(6, 8)
		deck := core.NewDeck()
		deck.Shuffle(rng)
		for i := 0; i < 20; i++ {
			card, _ := deck.Draw()
			b.Place(rng.Intn(6), rng.Intn(8), card)
		}

		b.ApplyGravity()
		before := b.Clone()

		assert.False(t, b.ApplyGravity(), "trial %d", trial)
		assert.True(t, before.Equal(b), "trial %d: grid changed", trial)
		assert.Empty(t, b.Motions())
	}
}

func TestApplyGravityMovesMarksWithCards(t *testing.T) {
	b := core.NewBoard(1, 3)
	b.Place(0, 0, c(core.Diamonds, core.Queen))
	b.MarkForRemoval([]core.Pos{core.P(0, 0)}, epoch)

	b.ApplyGravity()

	assert.False(t, b.IsMarked(0, 0))
	assert.True(t, b.IsMarked(0, 2))
	got := b.CollectMatured(epoch)
	require.Len(t, got, 1)
	assert.Equal(t, c(core.Diamonds, core.Queen), got[0].Card)
}

func TestSettleReturnsAllMotions(t *testing.T) {
	b := core.NewBoard(3, 3)
	b.Place(0, 0, c(core.Hearts, core.Two))
	b.Place(2, 1, c(core.Hearts, core.Three))

	motions := b.Settle()
	assert.Len(t, motions, 2)
	assert.False(t, b.ApplyGravity())
}

func TestHasAnyCardInTopRow(t *testing.T) {
	b := core.NewBoard(3, 3)
	assert.False(t, b.HasAnyCardInTopRow())
	b.Place(1, 1, c(core.Hearts, core.Two))
	assert.False(t, b.HasAnyCardInTopRow())
	b.Place(2, 0, c(core.Hearts, core.Three))
	assert.True(t, b.HasAnyCardInTopRow())
}

func TestBoardResetClearsMarks(t *testing.T) {
	b := core.NewBoard(2, 2)
	b.Place(0, 1, c(core.Hearts, core.Two))
	b.MarkForRemoval([]core.Pos{core.P(0, 1)}, epoch)

	b.Reset()

	assert.Zero(t, b.Count())
	assert.Zero(t, b.MarkCount())
}

func TestBoardString(t *testing.T) {
	b := core.NewBoard(2, 2)
	b.Place(0, 1, c(core.Hearts, core.Ten))
	b.Place(1, 1, c(core.Spades, core.Ace))
	assert.Equal(t, " .  . \n10♥ A♠", b.String())
}
