package config

import (
	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
)

// ApplyDifficultyPreset overrides the configured difficulty with a command
// line preset. An empty preset keeps the file value.
func ApplyDifficultyPreset(cfg *DropJackConfig, preset string) error {
	if preset == "" {
		return nil
	}
	d, err := core.ParseDifficulty(preset)
	if err != nil {
		return err
	}
	cfg.Difficulty = d.String()
	return nil
}
