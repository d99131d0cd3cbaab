package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by NewSession when the configuration cannot
// produce a playable session.
var ErrInvalidConfig = errors.New("core: invalid session config")

// Config holds session parameters.
type Config struct {
	Width  int
	Height int

	InitialFallInterval   time.Duration
	MinFallInterval       time.Duration
	SpeedIncreaseInterval time.Duration
	SpeedFactor           float64

	// CombinationDelay is the stagger between two removals of a wave.
	CombinationDelay time.Duration
	// HardDropRowInterval is how long a hard-dropped piece takes per row.
	HardDropRowInterval time.Duration

	BaseScore      int // per removed card
	CascadeBonus   int // per cascade wave
	HighScoreLimit int

	Difficulty Difficulty
	Seed       int64

	// Scores is optional; nil disables persistence.
	Scores ScoreBook
}

// DefaultConfig returns the standard 10x15 game.
func DefaultConfig() Config {
	return Config{
		Width:                 10,
		Height:                15,
		InitialFallInterval:   time.Second,
		MinFallInterval:       100 * time.Millisecond,
		SpeedIncreaseInterval: 30 * time.Second,
		SpeedFactor:           0.9,
		CombinationDelay:      300 * time.Millisecond,
		HardDropRowInterval:   16 * time.Millisecond,
		BaseScore:             21,
		CascadeBonus:          50,
		HighScoreLimit:        10,
		Difficulty:            Easy,
	}
}

// Validate checks that the configuration is playable.
func (c Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("%w: board %dx%d is smaller than 2x2", ErrInvalidConfig, c.Width, c.Height)
	case c.InitialFallInterval <= 0:
		return fmt.Errorf("%w: initial fall interval must be positive", ErrInvalidConfig)
	case c.MinFallInterval <= 0:
		return fmt.Errorf("%w: minimum fall interval must be positive", ErrInvalidConfig)
	case c.SpeedIncreaseInterval <= 0:
		return fmt.Errorf("%w: speed increase interval must be positive", ErrInvalidConfig)
	case c.SpeedFactor <= 0 || c.SpeedFactor > 1:
		return fmt.Errorf("%w: speed factor %v outside (0, 1]", ErrInvalidConfig, c.SpeedFactor)
	case c.CombinationDelay <= 0:
		return fmt.Errorf("%w: combination delay must be positive", ErrInvalidConfig)
	case c.HardDropRowInterval <= 0:
		return fmt.Errorf("%w: hard drop row interval must be positive", ErrInvalidConfig)
	case c.Difficulty != Easy && c.Difficulty != Hard:
		return fmt.Errorf("%w: unknown difficulty %d", ErrInvalidConfig, c.Difficulty)
	}
	return nil
}
