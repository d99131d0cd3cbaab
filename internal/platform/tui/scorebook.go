package tui

import (
	"github.com/charmbracelet/log"

	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
	"github.com/sdeming/dropjack-sub000/internal/storage"
)

// scoreStore is the part of storage.Store the score book needs.
type scoreStore interface {
	SaveScore(initials string, score int, difficulty string) (int64, error)
	TopScores(limit int) ([]storage.ScoreEntry, error)
}

// storeScoreBook records finished games in the SQLite store.
type storeScoreBook struct {
	store  scoreStore
	logger *log.Logger
}

// NewScoreBook adapts store to the engine's score book. It returns nil when
// store is nil, which leaves the session without persistence.
func NewScoreBook(store *storage.Store, logger *log.Logger) core.ScoreBook {
	if store == nil {
		return nil
	}
	return newScoreBook(store, logger)
}

func newScoreBook(store scoreStore, logger *log.Logger) *storeScoreBook {
	if logger == nil {
		logger = log.Default()
	}
	return &storeScoreBook{store: store, logger: logger}
}

func (b *storeScoreBook) RecordScore(initials string, score int, difficulty core.Difficulty) error {
	id, err := b.store.SaveScore(initials, score, difficulty.String())
	if err != nil {
		b.logger.Error("save score", "initials", initials, "score", score, "err", err)
		return err
	}
	b.logger.Info("score saved", "id", id, "initials", initials, "score", score, "difficulty", difficulty)
	return nil
}

func (b *storeScoreBook) TopScores(n int) ([]core.HighScore, error) {
	entries, err := b.store.TopScores(n)
	if err != nil {
		b.logger.Error("load high scores", "err", err)
		return nil, err
	}
	scores := make([]core.HighScore, 0, len(entries))
	for _, e := range entries {
		d, err := core.ParseDifficulty(e.Difficulty)
		if err != nil {
			b.logger.Warn("unknown difficulty in score table", "id", e.ID, "difficulty", e.Difficulty)
			continue
		}
		scores = append(scores, core.HighScore{
			Initials:   e.Initials,
			Score:      e.Score,
			Difficulty: d,
			Date:       e.CreatedAt,
		})
	}
	return scores, nil
}
