// chicken is a terminal arcade where a chicken crosses a crocodile river.
//
// Usage:
//
//	chicken list              - List available games
//	chicken play <game>       - Play a game
//	chicken menu              - Start menu to pick games interactively
//	chicken serve             - Start SSH server for remote play
//	chicken scores <game>     - Show high scores and stats for a game
//	chicken history           - Show recent runs
//	chicken config <game>     - Print the default config of a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set the seed of the crocodile layout
//	--db <path>           - Set database path (default: ~/.chicken/scores.db)
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--mute                - Disable the terminal bell
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/chicken-arcade/internal/games/crossing"
	_ "github.com/vovakirdan/chicken-arcade/internal/games/hop"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chicken",
	Short: "Chicken Arcade - help a chicken cross the crocodile river",
	Long: `Chicken Arcade is a terminal game collection about one brave chicken
and a river full of crocodiles.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run statistics
  history  - View recent runs
  config   - Print a game's default configuration

Examples:
  chicken list
  chicken play crossing
  chicken play hop --difficulty hard
  chicken menu
  chicken serve --ssh :2222
  chicken scores hop`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Layout seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chicken/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI commands discard logs otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
