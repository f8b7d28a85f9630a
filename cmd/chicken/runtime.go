package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/chicken-arcade/internal/audio"
	"github.com/vovakirdan/chicken-arcade/internal/config"
	"github.com/vovakirdan/chicken-arcade/internal/core"
	"github.com/vovakirdan/chicken-arcade/internal/games/crossing"
	"github.com/vovakirdan/chicken-arcade/internal/games/hop"
	"github.com/vovakirdan/chicken-arcade/internal/registry"
	"github.com/vovakirdan/chicken-arcade/internal/storage"
)

// runtimeConfig builds the runtime for a local terminal session.
func runtimeConfig(logger *log.Logger) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}
	if !flagMute {
		// Stdout belongs to the renderer
		cfg.Audio = audio.NewBell(os.Stderr, audio.CueVictory)
	}
	return cfg
}

// configureGame passes --config and --difficulty to the game's package.
func configureGame(gameID, path, difficulty string) error {
	if difficulty != "" {
		if _, ok := config.ParsePreset(difficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", difficulty)
		}
	}

	switch gameID {
	case "crossing":
		crossing.SetConfigPath(path)
		crossing.SetDifficultyPreset(difficulty)
	case "hop":
		hop.SetConfigPath(path)
		hop.SetDifficultyPreset(difficulty)
	}
	return nil
}

// openStore opens the scores database. Failure is only a warning: games
// still run without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without scores database", "error", err)
		return nil
	}
	return store
}

// requireGame exits with a hint when gameID is not registered.
func requireGame(gameID string) registry.GameInfo {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chicken list' to see available games.")
		os.Exit(1)
	}
	info, _ := registry.Info(gameID)
	return info
}
