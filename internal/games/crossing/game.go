// Package crossing implements Chicken vs Crocodiles: the chicken leaps
// forward in fixed steps and must never land on a resting crocodile.
package crossing

import (
	"github.com/vovakirdan/chicken-arcade/internal/chicken"
	"github.com/vovakirdan/chicken-arcade/internal/config"
	"github.com/vovakirdan/chicken-arcade/internal/core"
	"github.com/vovakirdan/chicken-arcade/internal/games/course"
	"github.com/vovakirdan/chicken-arcade/internal/registry"
)

const (
	gameID    = "crossing"
	gameTitle = "Chicken vs Crocodiles"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values keep the
// config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// Game implements Chicken vs Crocodiles.
type Game struct {
	*course.Runner
}

// New creates a new game instance.
func New() *Game {
	return &Game{Runner: course.NewRunner(chicken.VariantCrossing)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return gameTitle
}

// Reset loads the configuration and creates a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.Load(gameID, configPath)
	if err != nil {
		if runtime.Logger != nil {
			runtime.Logger.Warn("using default config", "game", gameID, "error", err)
		}
		cfg = config.DefaultCrossingConfig()
	}

	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.Configure(runtime, cfg, nil)
}

// Render draws the river bank, the crocodiles and the chicken.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cfg := g.Config()
	s := g.Controller().Session()
	f := course.FieldFor(dst, cfg.Course.Finish)
	half := cfg.Obstacles.LaneSpread / 2

	dst.DrawHLine(0, f.Row(cfg.Course.Finish), dst.Width(), course.FinishRow)
	if cfg.Course.Danger > 0 {
		dst.DrawHLine(0, f.Row(cfg.Course.Danger), dst.Width(), '┄')
		dst.DrawTextColor(1, f.Row(cfg.Course.Danger), "danger", core.ColorOrange)
	}

	for _, o := range s.Obstacles {
		course.DrawCrocodile(dst, f.Column(o.X, half), f.Row(o.Y))
	}

	course.DrawChicken(dst, dst.Width()/2, f.Row(s.Position), s.Phase)
	g.DrawHUD(dst, gameTitle)
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          gameID,
		Title:       gameTitle,
		Description: "Leap forward and never land on a crocodile",
	}, func() registry.Game {
		return New()
	})
}
