package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
)

// isolate points the home directory and working directory at empty temp
// dirs so no real config file is picked up.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg DropJackConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "dropjack.yaml"), "board:\n  width: 8\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Width, "local configs dir")

	writeFile(t, filepath.Join(home, ".dropjack", "configs", "dropjack.yaml"), "board:\n  width: 9\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Board.Width, "user config wins over local")

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "board:\n  width: 11\n")
	cfg, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Board.Width, "explicit path wins")
}

func TestLoadSkipsUnparsableSearchFile(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".dropjack", "configs", "dropjack.yaml"), "board: [not, a, map\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "timing:\n  initial_fall: soon\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "config: parse")
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DROPJACK_BOARD_WIDTH", "12")
	t.Setenv("DROPJACK_TIMING_INITIAL_FALL", "800ms")
	t.Setenv("DROPJACK_TIMING_SPEED_FACTOR", "0.75")
	t.Setenv("DROPJACK_SCORING_CASCADE_BONUS", "100")
	t.Setenv("DROPJACK_DIFFICULTY", "hard")
	t.Setenv("DROPJACK_STORAGE_PATH", "/tmp/scores.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 15, cfg.Board.Height, "untouched values keep the file value")
	assert.Equal(t, 800*time.Millisecond, cfg.Timing.InitialFall)
	assert.InDelta(t, 0.75, cfg.Timing.SpeedFactor, 1e-9)
	assert.Equal(t, 100, cfg.Scoring.CascadeBonus)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, "/tmp/scores.db", cfg.Storage.Path)
}

func TestLoadEnvOverrideInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("DROPJACK_BOARD_HEIGHT", "tall")

	_, err := Load("")
	assert.ErrorContains(t, err, "config: parse env")
}

func TestCoreConfig(t *testing.T) {
	got, err := Default().CoreConfig()
	require.NoError(t, err)

	want := core.DefaultConfig()
	assert.Equal(t, want, got)
}

func TestCoreConfigFillsMissingValues(t *testing.T) {
	cfg := DropJackConfig{
		Board:      BoardConfig{Width: 6},
		Timing:     TimingConfig{CombinationDelay: time.Second},
		Difficulty: "Hard",
	}

	got, err := cfg.CoreConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, got.Width)
	assert.Equal(t, 15, got.Height)
	assert.Equal(t, time.Second, got.CombinationDelay)
	assert.Equal(t, time.Second, got.InitialFallInterval)
	assert.Equal(t, core.Hard, got.Difficulty)
}

func TestCoreConfigRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Board.Width = 1
	_, err := cfg.CoreConfig()
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	cfg = Default()
	cfg.Timing.SpeedFactor = 2
	_, err = cfg.CoreConfig()
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	cfg = Default()
	cfg.Difficulty = "nightmare"
	_, err = cfg.CoreConfig()
	assert.ErrorContains(t, err, "unknown difficulty")
}

func TestApplyDifficultyPreset(t *testing.T) {
	cfg := Default()

	require.NoError(t, ApplyDifficultyPreset(&cfg, ""))
	assert.Equal(t, "easy", cfg.Difficulty)

	require.NoError(t, ApplyDifficultyPreset(&cfg, "HARD"))
	assert.Equal(t, "Hard", cfg.Difficulty)

	assert.Error(t, ApplyDifficultyPreset(&cfg, "normal"))
	assert.Equal(t, "Hard", cfg.Difficulty)
}

func TestUserConfigPath(t *testing.T) {
	home, _ := isolate(t)
	assert.Equal(t, filepath.Join(home, ".dropjack"), Dir())
	assert.Equal(t, filepath.Join(home, ".dropjack", "configs", "dropjack.yaml"), UserConfigPath())
}
