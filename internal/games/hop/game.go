// Package hop implements Croc Hop: crocodiles swing across the river and
// the chicken crosses by landing on their backs.
package hop

import (
	"time"

	"github.com/vovakirdan/chicken-arcade/internal/chicken"
	"github.com/vovakirdan/chicken-arcade/internal/config"
	"github.com/vovakirdan/chicken-arcade/internal/core"
	"github.com/vovakirdan/chicken-arcade/internal/games/course"
	"github.com/vovakirdan/chicken-arcade/internal/registry"
)

const (
	gameID    = "hop"
	gameTitle = "Croc Hop"
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

// Game implements Croc Hop.
type Game struct {
	*course.Runner
	difficulty *config.DifficultyManager
	tickRate   int
}

// New creates a new game instance.
func New() *Game {
	return &Game{Runner: course.NewRunner(chicken.VariantHop)}
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
		cfg = config.DefaultHopConfig()
	}

	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.Configure(runtime, cfg, g.tempo)
}

// tempo speeds the swing up as the chicken gets further.
func (g *Game) tempo(position int, active time.Duration) float64 {
	if !g.difficulty.IsEnabled() {
		return 1.0
	}
	ticks := int(active * time.Duration(g.tickRate) / time.Second)
	return g.difficulty.Speed(1.0, position, ticks)
}

// Render draws the river, the swinging crocodiles and the landing band.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cfg := g.Config()
	opts := g.Controller().Options()
	s := g.Controller().Session()
	f := course.FieldFor(dst, cfg.Course.Finish)
	half := core.Max(cfg.Obstacles.Amplitude+cfg.Course.Tolerance, 1)

	for _, o := range s.Obstacles {
		row := f.Row(o.Y)
		for x := 0; x < dst.Width(); x++ {
			dst.SetColor(x, row, course.WaterRow, core.ColorBlue)
		}
	}
	dst.DrawHLine(0, f.Row(cfg.Course.Finish), dst.Width(), course.FinishRow)

	// Landing band for the next leap
	if s.Phase == chicken.PhaseActive {
		row := f.Row(s.Position + opts.Step)
		dst.SetColor(f.Column(opts.ActorX-opts.Tolerance, half)-3, row, '[', core.ColorGray)
		dst.SetColor(f.Column(opts.ActorX+opts.Tolerance, half)+3, row, ']', core.ColorGray)
	}

	for _, o := range s.Obstacles {
		course.DrawCrocodile(dst, f.Column(o.X, half), f.Row(o.Y))
	}

	course.DrawChicken(dst, f.Column(opts.ActorX, half), f.Row(s.Position), s.Phase)
	g.DrawHUD(dst, gameTitle)
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          gameID,
		Title:       gameTitle,
		Description: "Time your leaps onto swinging crocodiles",
	}, func() registry.Game {
		return New()
	})
}
