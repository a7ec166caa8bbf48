package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

func sessionPress(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionModelFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, testConfig(), config.DefaultSettings(), nil, nil)

	// Two players from the menu
	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyDown}, enterKey)
	if m.view != viewGame {
		t.Fatalf("view = %d, expected game", m.view)
	}
	if m.settings.Mode != "pvp" {
		t.Errorf("session should remember the chosen mode, got %q", m.settings.Mode)
	}

	for _, k := range []rune{'1', '4', '2', '5', '3'} {
		m = sessionPress(m, runeKey(k), TickMsg{Gen: m.game.gen})
	}
	if m.game.Saved() != 1 {
		t.Errorf("Saved() = %d, expected 1", m.game.Saved())
	}

	// Back to the menu, which remembers the last choice
	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || m.quitting {
		t.Fatalf("esc should return to the menu, view = %d", m.view)
	}
	if m.menu.modeCursor != 1 {
		t.Errorf("menu cursor = %d, expected the two-player entry", m.menu.modeCursor)
	}

	// Scoreboard and back
	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("tab should open the scoreboard, view = %d", m.view)
	}
	if len(m.scoreboard.Results()) != 1 {
		t.Errorf("scoreboard shows %d results, expected 1", len(m.scoreboard.Results()))
	}
	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("esc should leave the scoreboard, view = %d", m.view)
	}

	m = sessionPress(m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionModelTracksResize(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), config.DefaultSettings(), nil, nil)
	m = sessionPress(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 120x40", m.config.ScreenW, m.config.ScreenH)
	}

	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyDown}, enterKey)
	if m.game.screen.Width() != 120 {
		t.Errorf("game screen width = %d, expected 120", m.game.screen.Width())
	}
}
