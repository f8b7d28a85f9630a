package crossing

import (
	"strings"
	"testing"

	"github.com/vovakirdan/chicken-arcade/internal/chicken"
	"github.com/vovakirdan/chicken-arcade/internal/core"
	"github.com/vovakirdan/chicken-arcade/internal/registry"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// runCountdown steps empty frames until the session is active.
func runCountdown(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if g.Controller().Phase() == chicken.PhaseActive {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("countdown never finished")
}

func TestGameStartsIdle(t *testing.T) {
	g := newGame(t)

	st := g.State()
	if !st.Idle {
		t.Error("a game that has not started should not need ticks")
	}
	if st.GameOver || st.Score != 0 {
		t.Errorf("unexpected initial state: %+v", st)
	}

	// Leaping before start only starts the countdown
	res := g.Step(press(core.ActionJump))
	if g.Controller().Phase() != chicken.PhaseCountdown {
		t.Errorf("phase = %v, expected countdown", g.Controller().Phase())
	}
	if res.State.Idle {
		t.Error("countdown needs ticks")
	}
}

func TestGameConfirmStarts(t *testing.T) {
	g := newGame(t)
	g.Step(press(core.ActionConfirm))

	if g.Controller().Phase() != chicken.PhaseCountdown {
		t.Errorf("phase = %v, expected countdown", g.Controller().Phase())
	}
}

func TestGameLeapAndCollide(t *testing.T) {
	g := newGame(t)
	g.Step(press(core.ActionJump))
	runCountdown(t, g)

	if !g.State().Idle {
		t.Error("active crossing has nothing to animate")
	}

	// 0 -> 50 is clear
	st := g.Step(press(core.ActionJump)).State
	if st.Score != 50 || st.GameOver {
		t.Fatalf("after first leap: %+v", st)
	}

	// 50 -> 100 lands on the first crocodile
	st = g.Step(press(core.ActionJump)).State
	if !st.GameOver || st.Won {
		t.Fatalf("expected a loss, got %+v", st)
	}
	if st.Score != 50 {
		t.Errorf("position should stay at 50, got %d", st.Score)
	}
	if st.Leaps != 2 {
		t.Errorf("leaps = %d, expected 2", st.Leaps)
	}
	if g.Last().Outcome != chicken.OutcomeCollided || g.Last().ObstacleID != 0 {
		t.Errorf("last resolution = %+v", g.Last())
	}
	if st.Outcome() != "lost" {
		t.Errorf("outcome = %q", st.Outcome())
	}

	// Leaping after the loss changes nothing
	again := g.Step(press(core.ActionJump)).State
	if again != st {
		t.Errorf("state changed after game over: %+v", again)
	}
}

func TestGameRestart(t *testing.T) {
	g := newGame(t)
	before := g.Controller().Session().Obstacles

	g.Step(press(core.ActionJump))
	runCountdown(t, g)
	g.Step(press(core.ActionJump))
	g.Step(press(core.ActionJump))

	st := g.Step(press(core.ActionRestart)).State
	if st.GameOver || st.Score != 0 || st.Leaps != 0 {
		t.Errorf("restart did not clear the session: %+v", st)
	}
	if g.Controller().Phase() != chicken.PhaseNotStarted {
		t.Errorf("phase = %v, expected not started", g.Controller().Phase())
	}

	after := g.Controller().Session().Obstacles
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("obstacle %d changed across restart: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press Space to start") {
		t.Error("title banner should show the intro prompt")
	}

	g.Step(press(core.ActionJump))
	g.Render(screen)
	out := screen.String()

	if n := strings.Count(out, "=<##>"); n != 5 {
		t.Errorf("rendered %d crocodiles, expected 5", n)
	}
	if !strings.Contains(out, "<o)") {
		t.Error("chicken not rendered")
	}
	if !strings.Contains(out, "Get ready!") {
		t.Error("countdown message not rendered")
	}
}

func TestRegistered(t *testing.T) {
	info, ok := registry.Info(gameID)
	if !ok {
		t.Fatal("crossing should register itself")
	}
	if info.Title != gameTitle {
		t.Errorf("title = %q", info.Title)
	}
}
