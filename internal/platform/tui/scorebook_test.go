package tui

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
	"github.com/sdeming/dropjack-sub000/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreBookRoundTrip(t *testing.T) {
	book := NewScoreBook(openStore(t), quietLogger())
	require.NotNil(t, book)

	require.NoError(t, book.RecordScore("ACE", 2100, core.Hard))
	require.NoError(t, book.RecordScore("BOB", 400, core.Easy))

	scores, err := book.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, "ACE", scores[0].Initials)
	assert.Equal(t, 2100, scores[0].Score)
	assert.Equal(t, core.Hard, scores[0].Difficulty)
	assert.False(t, scores[0].Date.IsZero())
	assert.Equal(t, core.Easy, scores[1].Difficulty)
}

func TestScoreBookReportsStoreErrors(t *testing.T) {
	book := NewScoreBook(openStore(t), quietLogger())

	assert.Error(t, book.RecordScore("", 10, core.Easy))
}

func TestNewScoreBookWithoutStore(t *testing.T) {
	assert.Nil(t, NewScoreBook(nil, nil))
}

type stubScoreStore struct {
	entries []storage.ScoreEntry
	err     error
}

func (s *stubScoreStore) SaveScore(string, int, string) (int64, error) {
	return 0, s.err
}

func (s *stubScoreStore) TopScores(int) ([]storage.ScoreEntry, error) {
	return s.entries, s.err
}

func TestScoreBookSkipsUnknownDifficulty(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	book := newScoreBook(&stubScoreStore{entries: []storage.ScoreEntry{
		{ID: 1, Initials: "ZED", Score: 90, Difficulty: "Nightmare", CreatedAt: when},
		{ID: 2, Initials: "AMY", Score: 80, Difficulty: "easy", CreatedAt: when},
	}}, quietLogger())

	scores, err := book.TopScores(5)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, core.HighScore{Initials: "AMY", Score: 80, Difficulty: core.Easy, Date: when}, scores[0])
}

func TestScoreBookTopScoresError(t *testing.T) {
	book := newScoreBook(&stubScoreStore{err: errors.New("disk gone")}, quietLogger())

	scores, err := book.TopScores(5)
	assert.Error(t, err)
	assert.Nil(t, scores)
	assert.Error(t, book.RecordScore("AMY", 1, core.Easy))
}
