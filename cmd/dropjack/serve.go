package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sdeming/dropjack-sub000/internal/config"
	"github.com/sdeming/dropjack-sub000/internal/games/dropjack"
	"github.com/sdeming/dropjack-sub000/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the DropJack SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. All players share one high score
table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.dropjack/host_key on first start

Examples:
  dropjack serve                           # Listen on :23234
  dropjack serve --ssh :2222               # Listen on port 2222
  dropjack serve --host-key ./my_host_key  # Use specific host key
  dropjack serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this long")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty for new sessions: easy, hard")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

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
	}

	serverCfg := tui.DefaultSSHServerConfig(config.Dir())
	serverCfg.Address = flagSSHAddr
	serverCfg.IdleTimeout = flagIdleTimeout
	serverCfg.TickRate = flagFPS
	if flagHostKey != "" {
		serverCfg.HostKeyPath = flagHostKey
	}

	newGame := func(l *log.Logger) (tui.Game, error) {
		c := gameCfg
		c.Scores = tui.NewScoreBook(store, l)
		game, err := dropjack.New(dropjack.Options{Config: c})
		if err != nil {
			return nil, err
		}
		return game, nil
	}

	server, err := tui.NewSSHServer(serverCfg, newGame, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting DropJack SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
