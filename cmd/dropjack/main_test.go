package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdeming/dropjack-sub000/internal/config"
	"github.com/sdeming/dropjack-sub000/internal/storage"
)

func TestDBPathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(func() { flagDBPath = "" })

	cfg := config.Default()
	cfg.Storage.Path = ""
	assert.Equal(t, filepath.Join(home, ".dropjack", "scores.db"), dbPath(cfg))

	cfg.Storage.Path = "/srv/dropjack.db"
	assert.Equal(t, "/srv/dropjack.db", dbPath(cfg))

	flagDBPath = "./local.db"
	assert.Equal(t, "./local.db", dbPath(cfg))
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	t.Cleanup(func() { flagLogLevel = "info" })

	flagLogLevel = "loud"
	_, err := newLogger(&bytes.Buffer{})
	assert.Error(t, err)

	flagLogLevel = "debug"
	_, err = newLogger(&bytes.Buffer{})
	assert.NoError(t, err)
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	var buf bytes.Buffer
	require.NoError(t, printScores(&buf, store, "", 10))
	assert.Contains(t, buf.String(), "No scores recorded yet.")

	_, err = store.SaveScore("ACE", 2100, "Hard")
	require.NoError(t, err)
	_, err = store.SaveScore("BOB", 300, "Easy")
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, printScores(&buf, store, "", 10))
	out := buf.String()
	assert.Contains(t, out, "High Scores\n")
	assert.Contains(t, out, "ACE")
	assert.Contains(t, out, "BOB")
	assert.Contains(t, out, "Best: 2100\n")
	assert.Contains(t, out, "Hard: 1 games, best 2100")
	assert.Contains(t, out, "Easy: 1 games, best 300")

	buf.Reset()
	require.NoError(t, printScores(&buf, store, "Hard", 10))
	out = buf.String()
	assert.Contains(t, out, "High Scores - Hard")
	assert.Contains(t, out, "Best: 2100\n")
	assert.Contains(t, out, "ACE")
	assert.NotContains(t, out, "BOB")
	assert.NotContains(t, out, "Easy:")
}

func TestScoresClearFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.db")
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Cleanup(func() { flagDBPath, flagClear = "", false })

	store, err := storage.Open(path)
	require.NoError(t, err)
	_, err = store.SaveScore("ACE", 2100, "Hard")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	flagDBPath, flagClear = path, true
	require.NoError(t, runScores(scoresCmd, nil))

	store, err = storage.Open(path)
	require.NoError(t, err)
	defer store.Close()
	scores, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"play", "scores", "serve", "config"} {
		assert.True(t, names[want], want)
	}
}
