package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andrevka/tilt48/internal/config"
	"github.com/andrevka/tilt48/internal/engine"
	"github.com/andrevka/tilt48/internal/platform/tui"
	"github.com/andrevka/tilt48/internal/session"
	"github.com/andrevka/tilt48/internal/storage"
)

var (
	flagName     string
	flagResume   bool
	flagPreset   string
	flagFourProb float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  U                - Undo last move
  R                - Restart
  Q/Ctrl+C         - Quit (progress is saved)

Spawn presets:
  classic  - 10% chance of spawning a 4 (original web game)
  standard - 20% chance of spawning a 4 (default)

Examples:
  tilt48 play
  tilt48 play --name alice
  tilt48 play --resume
  tilt48 play --preset classic
  tilt48 play --four-prob 0.05`,
	Run: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu: new game, resume, leaderboard",
	Run:   runMenu,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (default: $USER)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved game instead of starting fresh")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Spawn preset: classic, standard")
	playCmd.Flags().Float64Var(&flagFourProb, "four-prob", -1, "Probability of spawning a 4 (overrides preset)")

	menuCmd.Flags().StringVar(&flagName, "name", "", "Player name (default: $USER)")
}

// loadConfig loads the config and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		config.ApplyPreset(&cfg, config.Preset(flagPreset))
	}
	if flagFourProb >= 0 && flagFourProb <= 1 {
		cfg.Spawn.FourProbability = flagFourProb
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}

	return cfg, nil
}

// playerName resolves the player identity for local play.
func playerName() string {
	if flagName != "" {
		return flagName
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}

// terminalSize returns the terminal dimensions, with defaults when the
// size cannot be determined.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// spawnSeed returns the seed for tile spawning.
func spawnSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player := playerName()
	width, height := terminalSize()

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	spawner := engine.NewSpawner(spawnSeed(), cfg.Spawn.FourProbability)

	var sess *session.Session
	if flagResume && store != nil {
		entry, loadErr := store.LoadGame(player)
		switch {
		case loadErr != nil:
			fmt.Fprintf(os.Stderr, "Error loading save: %v\n", loadErr)
			if store != nil {
				store.Close()
			}
			os.Exit(1)
		case entry == nil:
			fmt.Fprintf(os.Stderr, "No saved game for %q, starting fresh.\n", player)
			sess = session.New(player, spawner)
		default:
			sess = session.Resume(player, entry.Record, spawner)
		}
	} else {
		sess = session.New(player, spawner)
	}

	runErr := tui.Run(sess, store, cfg.UI.Theme, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player := playerName()
	width, height := terminalSize()

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	runErr := tui.RunMenu(store, player, cfg, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
