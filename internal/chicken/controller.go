package chicken

import (
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-arcade/internal/audio"
)

// CountdownStep shows Message once At has elapsed since Start.
// The last step marks the moment play begins.
type CountdownStep struct {
	At      time.Duration
	Message string
}

// Messages are the texts shown at resolution points.
type Messages struct {
	Danger string // Crossing: position passed the danger threshold
	Lost   string // Crossing: landed on a crocodile
	Missed string // Hop: nothing to land on
	Won    string
}

// TempoFunc scales how fast swinging obstacles move. It receives the actor
// position and the time spent active.
type TempoFunc func(position int, active time.Duration) float64

// Options configure a Controller.
type Options struct {
	Variant   Variant
	Start     int // Initial actor position
	Step      int // Fixed leap distance
	Finish    int // Reaching this position wins
	Danger    int // Crossing: warn past this position, 0 disables
	ActorX    int // Hop: lane the chicken leaps in
	Tolerance int // Hop: max lane distance for a landing
	Layout    LayoutOptions
	Countdown []CountdownStep
	Messages  Messages
	Seed      int64
	Tempo     TempoFunc
	Audio     audio.Player
	Logger    *log.Logger
}

// Controller owns one Session and applies the game rules to it.
// It is not safe for concurrent use; the platform drives it from a single
// update loop.
type Controller struct {
	opts    Options
	log     *log.Logger
	session Session

	countdown time.Duration // Time spent in countdown
	stepIdx   int           // Next countdown step to show
	clock     time.Duration // Scaled swing time while active
	active    time.Duration // Unscaled time spent active
}

// New creates a controller with a fresh NotStarted session.
func New(opts Options) *Controller {
	if opts.Variant == 0 {
		opts.Variant = VariantCrossing
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	// Position must strictly increase with every leap
	if opts.Step < 1 {
		opts.Step = 1
	}
	if opts.Tolerance < 0 {
		opts.Tolerance = 0
	}

	steps := make([]CountdownStep, len(opts.Countdown))
	copy(steps, opts.Countdown)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].At < steps[j].At
	})
	opts.Countdown = steps

	c := &Controller{
		opts: opts,
		log:  opts.Logger.WithPrefix("chicken"),
	}
	c.session = c.fresh()
	return c
}

// fresh builds the initial session from options.
func (c *Controller) fresh() Session {
	c.countdown = 0
	c.stepIdx = 0
	c.clock = 0
	c.active = 0

	return Session{
		Phase:     PhaseNotStarted,
		Position:  c.opts.Start,
		Obstacles: Layout(c.opts.Variant, c.opts.Layout, c.opts.Seed),
	}
}

// Options returns the controller configuration.
func (c *Controller) Options() Options {
	return c.opts
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session.Clone()
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.session.Phase
}

// ActiveTime returns the unscaled time spent in the Active phase.
func (c *Controller) ActiveTime() time.Duration {
	return c.active
}

// Start begins the countdown. It does nothing unless the game has not
// started yet.
func (c *Controller) Start() {
	if c.session.Phase != PhaseNotStarted {
		return
	}
	c.play(audio.CueBackground)
	c.beginCountdown()
}

// Reset discards the session. Crossing returns to NotStarted; hop restarts
// the countdown straight away.
func (c *Controller) Reset() {
	c.pause(audio.CueVictory)
	c.session = c.fresh()

	if c.opts.Variant == VariantHop {
		c.play(audio.CueBackground)
		c.beginCountdown()
		return
	}
	c.pause(audio.CueBackground)
	c.log.Debug("session reset", "variant", c.opts.Variant)
}

// Ticking reports whether Tick has work to do. The platform should stop its
// timer whenever this is false.
func (c *Controller) Ticking() bool {
	switch c.session.Phase {
	case PhaseCountdown:
		return true
	case PhaseActive:
		return c.animated()
	default:
		return false
	}
}

// Tick advances time-driven state by elapsed.
func (c *Controller) Tick(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}

	switch c.session.Phase {
	case PhaseCountdown:
		c.countdown += elapsed
		c.advanceCountdown()
		if c.session.Phase == PhaseActive {
			c.Tick(c.overrun())
		}
	case PhaseActive:
		if !c.animated() {
			return
		}
		c.active += elapsed
		scale := 1.0
		if c.opts.Tempo != nil {
			scale = c.opts.Tempo(c.session.Position, c.active)
		}
		c.clock += time.Duration(float64(elapsed) * scale)
		for i := range c.session.Obstacles {
			c.session.Obstacles[i].moveTo(c.clock)
		}
	}
}

// Act performs one leap.
func (c *Controller) Act() Resolution {
	if c.session.Phase != PhaseActive {
		pos := c.session.Position
		return Resolution{Outcome: OutcomeIgnored, From: pos, To: pos, ObstacleID: -1}
	}

	c.play(audio.CueLeap)
	c.session.Leaps++

	var r Resolution
	if c.opts.Variant == VariantHop {
		r = c.resolveHop()
	} else {
		r = c.resolveCrossing()
	}

	c.log.Debug("leap",
		"outcome", r.Outcome,
		"from", r.From,
		"to", r.To,
		"obstacle", r.ObstacleID,
		"phase", c.session.Phase,
	)
	return r
}

// beginCountdown enters the countdown phase from zero.
func (c *Controller) beginCountdown() {
	c.session.Phase = PhaseCountdown
	c.countdown = 0
	c.stepIdx = 0
	c.advanceCountdown()
}

// advanceCountdown shows due messages and activates after the last step.
func (c *Controller) advanceCountdown() {
	steps := c.opts.Countdown
	for c.stepIdx < len(steps) && c.countdown >= steps[c.stepIdx].At {
		c.session.Message = steps[c.stepIdx].Message
		c.stepIdx++
	}
	if c.stepIdx >= len(steps) {
		c.session.Phase = PhaseActive
		c.log.Debug("session active", "variant", c.opts.Variant)
	}
}

// overrun returns how far the countdown ran past its last step.
func (c *Controller) overrun() time.Duration {
	steps := c.opts.Countdown
	if len(steps) == 0 {
		return 0
	}
	return c.countdown - steps[len(steps)-1].At
}

// animated reports whether any obstacle swings.
func (c *Controller) animated() bool {
	if c.opts.Variant != VariantHop {
		return false
	}
	for _, o := range c.session.Obstacles {
		if o.Swing.Moving() {
			return true
		}
	}
	return false
}

// lose ends the session in PhaseLost.
func (c *Controller) lose(msg string) {
	c.session.Phase = PhaseLost
	c.session.Message = msg
	c.pause(audio.CueBackground)
}

// win ends the session in PhaseWon.
func (c *Controller) win() {
	c.session.Phase = PhaseWon
	c.session.Message = c.opts.Messages.Won
	c.pause(audio.CueBackground)
	c.play(audio.CueVictory)
}

func (c *Controller) play(cue audio.Cue) {
	if c.opts.Audio == nil {
		return
	}
	c.cue("play", cue, c.opts.Audio.Play)
}

func (c *Controller) pause(cue audio.Cue) {
	if c.opts.Audio == nil {
		return
	}
	c.cue("pause", cue, c.opts.Audio.Pause)
}

// cue calls into the audio player. Playback problems never reach the game.
func (c *Controller) cue(op string, cue audio.Cue, fn func(audio.Cue) error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Debug("audio panic", "op", op, "cue", cue, "panic", r)
		}
	}()
	if err := fn(cue); err != nil {
		c.log.Debug("audio failed", "op", op, "cue", cue, "error", err)
	}
}
