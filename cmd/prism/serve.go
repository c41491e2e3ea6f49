package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prism-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the prism SSH server",
	Long: `Start an SSH server that lets users connect and play the gallery.

Each SSH connection gets its own game. Scores are stored per-server
(all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  prism serve                           # Listen on :23234 with auto-generated key
  prism serve --ssh :2222               # Listen on port 2222
  prism serve --host-key ./my_host_key  # Use specific host key
  prism serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = newLogger("prism-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting prism SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
