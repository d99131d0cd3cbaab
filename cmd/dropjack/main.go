// dropjack is a falling-card puzzle game for the terminal: stack cards so
// that connected runs add up to 21 and watch them cascade away.
//
// Usage:
//
//	dropjack play            - Play in this terminal
//	dropjack scores          - Show the high score table
//	dropjack serve           - Start an SSH server for remote play
//	dropjack config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible deals
//	--db <path>         - Set database path (default: ~/.dropjack/scores.db)
//	--config <path>     - Load configuration from a YAML file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dropjack",
	Short: "DropJack - a falling-card 21 puzzle in your terminal",
	Long: `DropJack drops playing cards onto a grid one at a time. Any connected
run of cards whose values add up to exactly 21 is removed, the cards above
fall, and new runs cascade for bonus points.

Available commands:
  play     - Play in this terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  dropjack play
  dropjack play --difficulty hard
  dropjack scores --difficulty easy
  dropjack serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.dropjack/scores.db)")
	pf.StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
