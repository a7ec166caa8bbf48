package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func menuPress(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuStartsFromSettings(t *testing.T) {
	s := config.DefaultSettings()
	s.Mode = "pvp"
	s.Difficulty = "hard"
	m := NewMenuModel(s, testConfig())

	if m.modeCursor != 1 || m.diffCursor != 2 {
		t.Errorf("cursors = (%d, %d), expected (1, 2)", m.modeCursor, m.diffCursor)
	}
}

func TestMenuVsCPUAsksDifficulty(t *testing.T) {
	m := NewMenuModel(config.DefaultSettings(), testConfig())

	m = menuPress(m, enterKey)
	if m.stage != stageDifficulty {
		t.Fatal("choosing vs CPU should ask for a difficulty")
	}
	if _, _, ok := m.Selection(); ok {
		t.Fatal("selection should not be final yet")
	}

	m = menuPress(m, runeKey('j'), enterKey)
	res := m.Result()
	if res.GameID != tictactoe.GameIDVsCPU || res.Mode != "cpu" || res.Difficulty != "medium" {
		t.Errorf("Result() = %+v", res)
	}
	if res.Quit || res.WantsScoreboard {
		t.Errorf("Result() should be a game selection: %+v", res)
	}
}

func TestMenuBackFromDifficulty(t *testing.T) {
	m := NewMenuModel(config.DefaultSettings(), testConfig())
	m = menuPress(m, enterKey, tea.KeyMsg{Type: tea.KeyEsc})

	if m.stage != stageMode {
		t.Error("esc should return to the mode list")
	}
	if m.IsQuitting() {
		t.Error("esc should not quit")
	}
}

func TestMenuPvPSkipsDifficulty(t *testing.T) {
	m := NewMenuModel(config.DefaultSettings(), testConfig())
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyDown}, enterKey)

	res := m.Result()
	if res.GameID != tictactoe.GameIDPvP || res.Difficulty != "" {
		t.Errorf("Result() = %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuPress(NewMenuModel(config.DefaultSettings(), testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = menuPress(NewMenuModel(config.DefaultSettings(), testConfig()), runeKey('q'))
	if !m.Result().Quit {
		t.Error("q should quit")
	}
}

func TestNewGame(t *testing.T) {
	game, err := NewGame(MenuResult{GameID: tictactoe.GameIDVsCPU, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	game.Reset(testConfig())
	ttt, ok := game.(*tictactoe.Game)
	if !ok {
		t.Fatalf("NewGame() returned %T", game)
	}
	if ttt.Session().Difficulty() != tictactoe.DifficultyHard {
		t.Errorf("difficulty = %s, expected hard", ttt.Session().Difficulty())
	}

	game, err = NewGame(MenuResult{GameID: tictactoe.GameIDPvP})
	if err != nil || game.ID() != tictactoe.GameIDPvP {
		t.Errorf("NewGame(pvp) = %v, %v", game, err)
	}

	if _, err := NewGame(MenuResult{GameID: tictactoe.GameIDVsCPU, Difficulty: "impossible"}); err == nil {
		t.Error("unknown difficulty should fail")
	}
	if _, err := NewGame(MenuResult{GameID: "chess"}); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abc", 9); got != "   abc" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() = %q", got)
	}
	styled := CurrentTheme().MenuTitle.Render("abc")
	if got := centerText(styled, 9); got != "   "+styled {
		t.Errorf("centerText() should ignore ANSI codes, got %q", got)
	}
}
