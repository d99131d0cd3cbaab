package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sdeming/dropjack-sub000/internal/config"
	"github.com/sdeming/dropjack-sub000/internal/core"
	"github.com/sdeming/dropjack-sub000/internal/games/dropjack"
	"github.com/sdeming/dropjack-sub000/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play DropJack in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, A/D  - Move the falling card
  Down, S          - Soft drop one row
  Space            - Hard drop
  Up/Down          - Choose Easy or Hard on the start screen
  Enter            - Start / submit initials
  P/Esc            - Pause
  Q                - Quit (asks for confirmation)
  Ctrl+S           - Save a screenshot to ~/.dropjack/screenshots
  Ctrl+C           - Exit immediately

Difficulty:
  easy   - Any adjacent cards can form 21
  hard   - Only cards of the same suit link up

Examples:
  dropjack play
  dropjack play --difficulty hard
  dropjack play --config ./my-dropjack.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}
	gameCfg, err := cfg.CoreConfig()
	if err != nil {
		return err
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
		gameCfg.Scores = tui.NewScoreBook(store, logger)
	}

	game, err := dropjack.New(dropjack.Options{Config: gameCfg})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("game started", "difficulty", gameCfg.Difficulty, "seed", flagSeed)
	opts := []tui.ModelOption{tui.WithLogger(logger)}
	if dir := config.Dir(); dir != "" {
		opts = append(opts, tui.WithScreenshotDir(filepath.Join(dir, "screenshots")))
	}
	if err := tui.Run(game, runtime, opts...); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
