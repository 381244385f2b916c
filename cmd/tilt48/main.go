// tilt48 is a terminal 2048 game with saved sessions and a shared
// leaderboard, playable locally or over SSH.
//
// Usage:
//
//	tilt48 play              - Play in the current terminal
//	tilt48 menu              - Menu flow: new game, resume, leaderboard
//	tilt48 serve             - Start the SSH server for remote play
//	tilt48 scores            - Show the leaderboard
//	tilt48 stats <player>    - Show one player's statistics
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Database path (default from config)
//	--seed <value>   - RNG seed for reproducible tile spawns
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilt48",
	Short: "tilt48 - 2048 in your terminal",
	Long: `tilt48 is a terminal take on the 2048 puzzle: slide tiles, merge
equal pairs, reach 2048. Progress is saved per player and finished
games land on a shared leaderboard.

Examples:
  tilt48 play
  tilt48 play --name alice --resume
  tilt48 menu
  tilt48 serve --ssh :2222
  tilt48 scores --limit 20
  tilt48 stats alice`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
