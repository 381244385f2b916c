package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrevka/tilt48/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <player>",
	Short: "Show one player's statistics",
	Long: `Display aggregated leaderboard statistics for a player.

Examples:
  tilt48 stats alice`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	player := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetPlayerStats(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stats for %s\n", stats.Player)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No finished games yet.")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Best tile:     %d\n", stats.BestTile)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
