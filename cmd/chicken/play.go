package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-arcade/internal/platform/tui"
	"github.com/vovakirdan/chicken-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up/W  - Start, then leap
  Enter       - Start
  R           - Restart
  B/Esc       - Leave (when not playing)
  Ctrl+S      - Save a screenshot to ~/.chicken/screenshots
  Q/Ctrl+C    - Quit

Difficulty options (hop speeds up its crocodiles as you advance):
  easy   - Wider landing band, starts slow
  normal - Starts at 30% tempo boost
  hard   - Narrower landing band, starts at 70% tempo boost
  fixed  - No progression

Configuration is read from --config, ~/.chicken/configs/<game>.yaml or
./configs/<game>.yaml, layered over the built-in defaults. CHICKEN_*
environment variables override any file; see 'chicken config --env'.

Examples:
  chicken play crossing
  chicken play hop --difficulty easy
  chicken play hop --seed 42
  chicken play crossing --config ./my-crossing.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	logger.Info("starting game", "game", gameID, "seed", flagSeed, "fps", flagFPS)

	_, runErr := tui.Run(game, store, runtimeConfig(logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
