package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-arcade/internal/config"
)

var flagConfigEnv bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default configuration of a game",
	Long: `Print the built-in YAML configuration of a game. Copy it to
~/.chicken/configs/<game>.yaml and edit it to change the course.

With --env, list the CHICKEN_* environment variables that override it.

Examples:
  chicken config hop > ~/.chicken/configs/hop.yaml
  chicken config crossing --env`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEnv, "env", false, "List environment overrides instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	if flagConfigEnv {
		fmt.Println(config.EnvHelp())
		return
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
