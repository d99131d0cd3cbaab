package core

import "time"

// HighScore is one leaderboard entry.
type HighScore struct {
	Initials   string
	Score      int
	Difficulty Difficulty
	Date       time.Time
}

// ScoreBook persists finished games. Errors are never surfaced as gameplay
// failures; implementations are expected to log them.
type ScoreBook interface {
	RecordScore(initials string, score int, difficulty Difficulty) error
	TopScores(n int) ([]HighScore, error)
}
