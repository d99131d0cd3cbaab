package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/sdeming/dropjack-sub000/internal/config"
	"github.com/sdeming/dropjack-sub000/internal/storage"
)

// newLogger writes to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dropjack",
		Level:           level,
	}), nil
}

// fileLogger logs to ~/.dropjack/dropjack.log so the game screen stays
// clean. The returned close func is never nil.
func fileLogger() (*log.Logger, func(), error) {
	dir := config.Dir()
	if dir == "" {
		l, err := newLogger(io.Discard)
		return l, func() {}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "dropjack.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l, func() { f.Close() }, nil
}

// loadConfig reads --config (or the search path) and applies preset when set.
func loadConfig(preset string) (config.DropJackConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		if err := config.ApplyDifficultyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// dbPath picks --db, then the configured path, then ~/.dropjack/scores.db.
func dbPath(cfg config.DropJackConfig) string {
	switch {
	case flagDBPath != "":
		return flagDBPath
	case cfg.Storage.Path != "":
		return cfg.Storage.Path
	}
	if dir := config.Dir(); dir != "" {
		return filepath.Join(dir, "scores.db")
	}
	return "scores.db"
}

// openStore opens the score database, logging and returning nil on failure
// so the game stays playable without persistence.
func openStore(cfg config.DropJackConfig, logger *log.Logger) *storage.Store {
	path := dbPath(cfg)
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "err", err)
		return nil
	}
	logger.Debug("scores database opened", "path", path)
	return store
}
