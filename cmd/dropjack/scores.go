package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
	"github.com/sdeming/dropjack-sub000/internal/platform/tui"
	"github.com/sdeming/dropjack-sub000/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagInteractive      bool
	flagClear            bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best recorded games.

Examples:
  dropjack scores
  dropjack scores --difficulty hard --limit 5
  dropjack scores -i
  dropjack scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one difficulty: easy, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) error {
	difficulty := ""
	if flagScoresDifficulty != "" {
		d, err := core.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			return err
		}
		difficulty = d.String()
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}
	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, difficulty, width, height)
	}
	return printScores(os.Stdout, store, difficulty, flagScoresLimit)
}

func printScores(w io.Writer, store *storage.Store, difficulty string, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if difficulty == "" {
		scores, err = store.TopScores(limit)
	} else {
		scores, err = store.TopScoresByDifficulty(difficulty, limit)
	}
	if err != nil {
		return err
	}

	title := "High Scores"
	if difficulty != "" {
		title += " - " + difficulty
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'dropjack play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-4s  %-8s  %-4s  %s\n", "Rank", "Name", "Score", "Mode", "Date")
	fmt.Fprintf(w, "  %-4s  %-4s  %-8s  %-4s  %s\n", "----", "----", "-----", "----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-4s  %-8d  %-4s  %s\n",
			i+1, e.Initials, e.Score, e.Difficulty, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(difficulty)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	for _, d := range []string{core.Easy.String(), core.Hard.String()} {
		s, ok := stats[d]
		if !ok || (difficulty != "" && d != difficulty) {
			continue
		}
		fmt.Fprintf(w, "%s: %d games, best %d, average %.0f\n", d, s.Games, s.HighScore, s.AvgScore)
	}
	return nil
}
