package core

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-arcade/internal/audio"
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the obstacle layout

	Audio  audio.Player // Nil means silent
	Logger *log.Logger  // Nil means discard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int  // Distance reached, or the finish on a win
	Leaps    int  // Leaps attempted
	Playing  bool // Started and not over yet
	GameOver bool // Lost or won
	Won      bool
	Idle     bool // Nothing time-driven is running, ticks may stop
}

// Outcome names the result of a finished game for storage.
func (s GameState) Outcome() string {
	switch {
	case !s.GameOver:
		return "playing"
	case s.Won:
		return "won"
	default:
		return "lost"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
