package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrevka/tilt48/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tilt48 SSH server",
	Long: `Start an SSH server that lets players connect and play remotely.

Each connection gets its own session with the menu flow; the SSH user
name is the player identity. Saves and the leaderboard are shared
server-side.

Host key handling:
  - If --host-key or the config's server.host_key is set, that file is used
  - Otherwise a key is auto-generated at ~/.tilt48/host_key

Examples:
  tilt48 serve                     # Listen on :23248
  tilt48 serve --ssh :2222         # Listen on port 2222
  tilt48 serve --db ./tilt48.db    # Use a specific database

Players connect with:
  ssh -p 23248 <name>@yourhost`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tilt48 SSH server on %s\n", cfg.Server.Address)
	fmt.Println("Connect with: ssh -p 23248 <name>@localhost")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
