// Package config loads the DropJack configuration from YAML with environment
// overrides and converts it into the engine configuration.
package config

import (
	"time"

	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
)

// DropJackConfig is the on-disk configuration.
type DropJackConfig struct {
	Board      BoardConfig   `yaml:"board" envPrefix:"BOARD_"`
	Timing     TimingConfig  `yaml:"timing" envPrefix:"TIMING_"`
	Scoring    ScoringConfig `yaml:"scoring" envPrefix:"SCORING_"`
	Difficulty string        `yaml:"difficulty" env:"DIFFICULTY"` // "easy" or "hard"
	Storage    StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
}

// BoardConfig sets the grid size.
type BoardConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// TimingConfig holds the fall speed curve and removal pacing.
type TimingConfig struct {
	InitialFall      time.Duration `yaml:"initial_fall" env:"INITIAL_FALL"`
	MinFall          time.Duration `yaml:"min_fall" env:"MIN_FALL"`
	SpeedUpEvery     time.Duration `yaml:"speed_up_every" env:"SPEED_UP_EVERY"`
	SpeedFactor      float64       `yaml:"speed_factor" env:"SPEED_FACTOR"`
	CombinationDelay time.Duration `yaml:"combination_delay" env:"COMBINATION_DELAY"`
	HardDropRow      time.Duration `yaml:"hard_drop_row" env:"HARD_DROP_ROW"`
}

// ScoringConfig holds point values.
type ScoringConfig struct {
	BaseScore      int `yaml:"base_score" env:"BASE_SCORE"`
	CascadeBonus   int `yaml:"cascade_bonus" env:"CASCADE_BONUS"`
	HighScoreLimit int `yaml:"high_score_limit" env:"HIGH_SCORE_LIMIT"`
}

// StorageConfig locates the score database. An empty path uses the CLI
// default.
type StorageConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

// CoreConfig converts the file configuration into an engine configuration.
// Missing values fall back to core.DefaultConfig.
func (c DropJackConfig) CoreConfig() (core.Config, error) {
	out := core.DefaultConfig()

	setInt(&out.Width, c.Board.Width)
	setInt(&out.Height, c.Board.Height)
	setDuration(&out.InitialFallInterval, c.Timing.InitialFall)
	setDuration(&out.MinFallInterval, c.Timing.MinFall)
	setDuration(&out.SpeedIncreaseInterval, c.Timing.SpeedUpEvery)
	setDuration(&out.CombinationDelay, c.Timing.CombinationDelay)
	setDuration(&out.HardDropRowInterval, c.Timing.HardDropRow)
	if c.Timing.SpeedFactor != 0 {
		out.SpeedFactor = c.Timing.SpeedFactor
	}
	setInt(&out.BaseScore, c.Scoring.BaseScore)
	setInt(&out.CascadeBonus, c.Scoring.CascadeBonus)
	setInt(&out.HighScoreLimit, c.Scoring.HighScoreLimit)

	if c.Difficulty != "" {
		d, err := core.ParseDifficulty(c.Difficulty)
		if err != nil {
			return out, err
		}
		out.Difficulty = d
	}

	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
