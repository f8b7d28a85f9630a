package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-arcade/internal/core"
	"github.com/vovakirdan/chicken-arcade/internal/registry"
	"github.com/vovakirdan/chicken-arcade/internal/storage"
)

// Model is the Bubble Tea model for running one arcade game.
// Ticks are only scheduled while the game reports it is not idle; a key
// press on an idle game is applied at once and resumes ticking if needed.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	log        *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	ticking    bool      // A tick command is in flight
	startedAt  time.Time // Wall clock start of the current run
	saved      bool      // Run recorded for the current game over
	exitOnBack bool      // Quit the program on Back instead of flagging it
	backToMenu bool
	quitting   bool
}

// NewModel creates a model and resets the game for the given runtime.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		log:        logger.WithPrefix("tui"),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	m.ticking = !m.gameState.Idle
	return m
}

// Init starts the tick loop when the game needs it from the first frame.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return tickCmd(m.config.TickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.ticking {
			return m, nil
		}
		return m.step()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back only leaves a game that is not in progress
	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionBack {
		if m.gameState.Playing {
			return m, nil
		}
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.inputFrame.Empty() || m.ticking {
		// Applied on the next tick
		return m, nil
	}
	return m.step()
}

// step runs one simulation step and decides whether to keep ticking.
func (m Model) step() (tea.Model, tea.Cmd) {
	prev := m.gameState
	m.gameState = m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()

	if m.gameState.Playing && !prev.Playing {
		m.startedAt = time.Now()
	}
	if !m.gameState.GameOver {
		m.saved = false
	}
	if m.gameState.GameOver && !m.saved {
		m.saveRun()
	}

	if m.gameState.Idle {
		m.ticking = false
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the score and the run summary once per game over.
func (m *Model) saveRun() {
	m.saved = true
	st := m.gameState

	var duration time.Duration
	if !m.startedAt.IsZero() {
		duration = time.Since(m.startedAt)
	}
	m.log.Info("game over",
		"game", m.game.ID(),
		"outcome", st.Outcome(),
		"score", st.Score,
		"leaps", st.Leaps,
		"duration", duration.Round(time.Millisecond),
	)

	if m.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.log.Warn("could not save score", "error", err)
		}
	}

	run, err := m.store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Outcome:  st.Outcome(),
		Score:    st.Score,
		Leaps:    st.Leaps,
		Duration: duration,
	})
	if err != nil {
		m.log.Warn("could not save run", "error", err)
		return
	}
	m.log.Debug("run saved", "run", run.RunID)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("no home directory for screenshots", "error", err)
		return
	}
	dir := filepath.Join(home, ".chicken", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Ticking reports whether a tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game. It returns true when
// the player asked to go back to the menu rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
