package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dropjack.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hardcoded defaults. It matches the embedded YAML and
// is used when that cannot be parsed.
func Default() DropJackConfig {
	return DropJackConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 15,
		},
		Timing: TimingConfig{
			InitialFall:      time.Second,
			MinFall:          100 * time.Millisecond,
			SpeedUpEvery:     30 * time.Second,
			SpeedFactor:      0.9,
			CombinationDelay: 300 * time.Millisecond,
			HardDropRow:      16 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			BaseScore:      21,
			CascadeBonus:   50,
			HighScoreLimit: 10,
		},
		Difficulty: "easy",
	}
}
