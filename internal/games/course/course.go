// Package course adapts a chicken.Controller to the arcade Game interface.
// The crossing and hop games embed a Runner and add their own rendering.
package course

import (
	"time"

	"github.com/vovakirdan/chicken-arcade/internal/chicken"
	"github.com/vovakirdan/chicken-arcade/internal/config"
	"github.com/vovakirdan/chicken-arcade/internal/core"
)

// Runner drives one controller from platform input frames.
type Runner struct {
	variant chicken.Variant
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	ctrl    *chicken.Controller
	last    chicken.Resolution
}

// NewRunner creates a runner for a variant. Reset must be called before use.
func NewRunner(v chicken.Variant) *Runner {
	return &Runner{variant: v}
}

// Configure builds a fresh controller for cfg. The tempo may be nil.
func (r *Runner) Configure(runtime core.RuntimeConfig, cfg config.GameConfig, tempo chicken.TempoFunc) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	r.runtime = runtime
	r.cfg = cfg

	opts := cfg.Options(r.variant, runtime.Seed)
	opts.Tempo = tempo
	opts.Logger = runtime.Logger
	if cfg.Audio.Enabled {
		opts.Audio = runtime.Audio
	}

	r.ctrl = chicken.New(opts)
	r.last = chicken.Resolution{Outcome: chicken.OutcomeIgnored, ObstacleID: -1}
}

// Controller exposes the underlying controller.
func (r *Runner) Controller() *chicken.Controller {
	return r.ctrl
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() config.GameConfig {
	return r.cfg
}

// Last returns the resolution of the most recent leap.
func (r *Runner) Last() chicken.Resolution {
	return r.last
}

// Step applies the frame's actions, then advances time by one tick.
func (r *Runner) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		r.ctrl.Reset()
		r.last = chicken.Resolution{Outcome: chicken.OutcomeIgnored, ObstacleID: -1}
	}

	notStarted := r.ctrl.Phase() == chicken.PhaseNotStarted
	switch {
	case notStarted && (in.Has(core.ActionJump) || in.Has(core.ActionConfirm)):
		r.ctrl.Start()
	case in.Has(core.ActionJump):
		if res := r.ctrl.Act(); res.Outcome != chicken.OutcomeIgnored {
			r.last = res
		}
	}

	r.ctrl.Tick(time.Second / time.Duration(r.runtime.TickRate))

	return core.StepResult{State: r.State()}
}

// State summarises the session for the platform.
func (r *Runner) State() core.GameState {
	s := r.ctrl.Session()
	score := s.Position
	if s.Phase == chicken.PhaseWon {
		score = core.Max(score, r.cfg.Course.Finish)
	}

	return core.GameState{
		Score:    score,
		Leaps:    s.Leaps,
		Playing:  s.Phase == chicken.PhaseCountdown || s.Phase == chicken.PhaseActive,
		GameOver: s.Phase.Over(),
		Won:      s.Phase == chicken.PhaseWon,
		Idle:     !r.ctrl.Ticking(),
	}
}
