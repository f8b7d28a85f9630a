package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

//go:embed defaults/hop.yaml
var defaultHopYAML []byte

// DefaultCrossingConfig returns the hardcoded Chicken vs Crocodiles configuration.
func DefaultCrossingConfig() GameConfig {
	return GameConfig{
		Actor: ActorConfig{
			Start: 0,
			Step:  50,
		},
		Obstacles: ObstacleConfig{
			Count:      5,
			Spacing:    80,
			Offset:     100,
			LaneSpread: 400,
		},
		Course: CourseConfig{
			Finish: 500,
			Danger: 300,
		},
		Countdown: []CountdownStep{
			{AfterMS: 0, Message: "Get ready! Chicken is cracking out of the egg..."},
			{AfterMS: 3000, Message: "Ready... Steady... Go!"},
		},
		Messages: MessagesConfig{
			Intro:  "Press Space to start the adventure!",
			Hint:   "Press Space to leap over crocodiles!",
			Danger: "You're now getting dangerously close!",
			Lost:   "Oh no! Crocodile got the chicken",
			Won:    "Winner gets Chicken dinner!",
		},
		Audio: AudioConfig{Enabled: true},
		Difficulty: DifficultyConfig{
			Progression: ProgressionConfig{Type: "none"},
		},
	}
}

// DefaultHopConfig returns the hardcoded Croc Hop configuration.
func DefaultHopConfig() GameConfig {
	return GameConfig{
		Actor: ActorConfig{
			Start: 0,
			Step:  60,
			Lane:  0,
		},
		Obstacles: ObstacleConfig{
			Count:     6,
			Spacing:   60,
			Offset:    60,
			Amplitude: 120,
			PeriodMS:  2400,
		},
		Course: CourseConfig{
			Finish:    360,
			Tolerance: 30,
		},
		Countdown: []CountdownStep{
			{AfterMS: 0, Message: "3"},
			{AfterMS: 1000, Message: "2"},
			{AfterMS: 2000, Message: "1"},
			{AfterMS: 3000, Message: "Go!"},
		},
		Messages: MessagesConfig{
			Intro:  "Press Space to start hopping!",
			Hint:   "Leap when a crocodile swings under the chicken!",
			Missed: "Splash! No crocodile to land on",
			Won:    "Across the river! Chicken dinner!",
		},
		Audio: AudioConfig{Enabled: true},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 360,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	case "hop":
		return defaultHopYAML
	default:
		return nil
	}
}

// Default returns the embedded default configuration for a game.
func Default(gameID string) (GameConfig, error) {
	var fallback GameConfig
	switch gameID {
	case "crossing":
		fallback = DefaultCrossingConfig()
	case "hop":
		fallback = DefaultHopConfig()
	default:
		return GameConfig{}, fmt.Errorf("config: no defaults for game %q", gameID)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}
