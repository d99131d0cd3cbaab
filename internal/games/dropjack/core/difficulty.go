package core

import (
	"fmt"
	"strings"
)

// Difficulty selects the adjacency rule of the combination search.
type Difficulty int

const (
	// Easy links any two orthogonally adjacent cards.
	Easy Difficulty = iota
	// Hard only links adjacent cards of the same suit.
	Hard
)

// String returns "Easy" or "Hard".
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Toggle returns the other difficulty.
func (d Difficulty) Toggle() Difficulty {
	if d == Hard {
		return Easy
	}
	return Hard
}

// RequiresSameSuit reports whether combinations must share a suit.
func (d Difficulty) RequiresSameSuit() bool {
	return d == Hard
}

// ParseDifficulty parses a difficulty name, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("core: unknown difficulty %q", s)
	}
}
