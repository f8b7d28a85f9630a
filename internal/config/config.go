// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/chicken-arcade/internal/chicken"
)

// GameConfig contains all configuration for one chicken game variant.
type GameConfig struct {
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Course     CourseConfig     `yaml:"course"`
	Countdown  []CountdownStep  `yaml:"countdown"`
	Messages   MessagesConfig   `yaml:"messages"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ActorConfig defines the chicken.
type ActorConfig struct {
	Start int `yaml:"start" env:"CHICKEN_ACTOR_START"`
	Step  int `yaml:"step" env:"CHICKEN_ACTOR_STEP"`
	Lane  int `yaml:"lane" env:"CHICKEN_ACTOR_LANE"` // Hop only
}

// ObstacleConfig defines the crocodile generator.
type ObstacleConfig struct {
	Count      int `yaml:"count" env:"CHICKEN_OBSTACLE_COUNT"`
	Spacing    int `yaml:"spacing" env:"CHICKEN_OBSTACLE_SPACING"`
	Offset     int `yaml:"offset" env:"CHICKEN_OBSTACLE_OFFSET"`
	LaneSpread int `yaml:"lane_spread" env:"CHICKEN_OBSTACLE_LANE_SPREAD"` // Crossing only
	Amplitude  int `yaml:"amplitude" env:"CHICKEN_OBSTACLE_AMPLITUDE"`     // Hop only
	PeriodMS   int `yaml:"period_ms" env:"CHICKEN_OBSTACLE_PERIOD_MS"`     // Hop only
}

// CourseConfig defines the thresholds of the course.
type CourseConfig struct {
	Finish    int `yaml:"finish" env:"CHICKEN_COURSE_FINISH"`
	Danger    int `yaml:"danger" env:"CHICKEN_COURSE_DANGER"`       // Crossing only
	Tolerance int `yaml:"tolerance" env:"CHICKEN_COURSE_TOLERANCE"` // Hop only
}

// CountdownStep is one message of the pre-game countdown.
type CountdownStep struct {
	AfterMS int    `yaml:"after_ms"`
	Message string `yaml:"message"`
}

// MessagesConfig holds the texts shown to the player.
type MessagesConfig struct {
	Intro  string `yaml:"intro"` // Title screen prompt
	Hint   string `yaml:"hint"`  // Shown while no other message is set
	Danger string `yaml:"danger"`
	Lost   string `yaml:"lost"`
	Missed string `yaml:"missed"`
	Won    string `yaml:"won"`
}

// AudioConfig toggles sound cues for a game.
type AudioConfig struct {
	Enabled bool `yaml:"enabled" env:"CHICKEN_AUDIO"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the swing tempo at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Validate rejects values that would let the chicken stand still or move
// backwards.
func (c GameConfig) Validate() error {
	switch {
	case c.Actor.Step <= 0:
		return fmt.Errorf("actor.step must be positive, got %d", c.Actor.Step)
	case c.Obstacles.Spacing <= 0:
		return fmt.Errorf("obstacles.spacing must be positive, got %d", c.Obstacles.Spacing)
	case c.Course.Finish <= c.Actor.Start:
		return fmt.Errorf("course.finish %d must be beyond actor.start %d", c.Course.Finish, c.Actor.Start)
	case c.Course.Tolerance < 0:
		return fmt.Errorf("course.tolerance must not be negative, got %d", c.Course.Tolerance)
	case c.Obstacles.PeriodMS < 0:
		return fmt.Errorf("obstacles.period_ms must not be negative, got %d", c.Obstacles.PeriodMS)
	}
	return nil
}

// ParsePreset converts a CLI value to a preset. Empty or unknown values
// report false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Course.Tolerance = cfg.Course.Tolerance * 3 / 2
	case DifficultyHard:
		cfg.Course.Tolerance = cfg.Course.Tolerance * 2 / 3
	}
}

// Options converts the config into controller options for a variant.
// Audio, logger and tempo are left for the caller.
func (c GameConfig) Options(v chicken.Variant, seed int64) chicken.Options {
	steps := make([]chicken.CountdownStep, len(c.Countdown))
	for i, s := range c.Countdown {
		steps[i] = chicken.CountdownStep{
			At:      time.Duration(s.AfterMS) * time.Millisecond,
			Message: s.Message,
		}
	}

	return chicken.Options{
		Variant:   v,
		Start:     c.Actor.Start,
		Step:      c.Actor.Step,
		Finish:    c.Course.Finish,
		Danger:    c.Course.Danger,
		ActorX:    c.Actor.Lane,
		Tolerance: c.Course.Tolerance,
		Layout: chicken.LayoutOptions{
			Count:      c.Obstacles.Count,
			Spacing:    c.Obstacles.Spacing,
			Offset:     c.Obstacles.Offset,
			LaneSpread: c.Obstacles.LaneSpread,
			Amplitude:  c.Obstacles.Amplitude,
			Period:     time.Duration(c.Obstacles.PeriodMS) * time.Millisecond,
		},
		Countdown: steps,
		Messages: chicken.Messages{
			Danger: c.Messages.Danger,
			Lost:   c.Messages.Lost,
			Missed: c.Messages.Missed,
			Won:    c.Messages.Won,
		},
		Seed: seed,
	}
}
