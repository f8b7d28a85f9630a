package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chicken-arcade/internal/core"
	_ "github.com/vovakirdan/chicken-arcade/internal/games/crossing"
	_ "github.com/vovakirdan/chicken-arcade/internal/games/hop"
	"github.com/vovakirdan/chicken-arcade/internal/storage"
)

func TestMenuListsGamesWithBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore("hop", 240)
	require.NoError(t, err)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	items := m.Items()
	require.Len(t, items, 2)

	assert.Equal(t, "crossing", items[0].GameID)
	assert.Equal(t, 0, items[0].Best)
	assert.Equal(t, "hop", items[1].GameID)
	assert.Equal(t, 240, items[1].Best)

	assert.Contains(t, m.View(), "best 240")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(keyMsg("j"))
	m = next.(MenuModel)
	next, cmd := m.Update(keyMsg(" "))
	m = next.(MenuModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, "hop", m.Selected().GameID)
	assert.NotNil(t, cmd)
}

func TestSessionModelFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	// Select the first game
	next, _ := s.Update(keyMsg(" "))
	s = next.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	assert.Contains(t, s.View(), "Chicken vs Crocodiles")

	// Back from a game that has not started returns to the menu
	next, _ = s.Update(keyMsg("b"))
	s = next.(SessionModel)
	assert.Equal(t, screenMenu, s.screen)

	// Scoreboard and back
	next, _ = s.Update(keyMsg("tab"))
	s = next.(SessionModel)
	assert.Equal(t, screenScores, s.screen)
	assert.Contains(t, s.View(), "HIGH SCORES")

	next, _ = s.Update(keyMsg("esc"))
	s = next.(SessionModel)
	assert.Equal(t, screenMenu, s.screen)
}
