package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		cell   int
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, -1},
		{"vim down", runeKey('j'), core.ActionDown, -1},
		{"wasd left", runeKey('a'), core.ActionLeft, -1},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, -1},
		{"space places", runeKey(' '), core.ActionPlace, -1},
		{"enter places", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace, -1},
		{"first cell", runeKey('1'), core.ActionPlace, 0},
		{"last cell", runeKey('9'), core.ActionPlace, 8},
		{"zero is unbound", runeKey('0'), core.ActionNone, -1},
		{"undo", runeKey('u'), core.ActionUndo, -1},
		{"new round", runeKey('n'), core.ActionRestart, -1},
		{"reset scores", runeKey('x'), core.ActionResetAll, -1},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, -1},
		{"quit", runeKey('q'), core.ActionQuit, -1},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, cell := km.MapKey(tt.msg)
			if action != tt.action || cell != tt.cell {
				t.Errorf("MapKey(%q) = (%v, %d), expected (%v, %d)", tt.msg.String(), action, cell, tt.action, tt.cell)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('5'), &frame) {
		t.Fatal("'5' should not quit")
	}
	if !frame.HasCell() || frame.Cell != 4 {
		t.Errorf("'5' should select cell 4, got %d", frame.Cell)
	}
	if frame.Has(core.ActionPlace) {
		t.Error("Direct cell selection should not also place at the cursor")
	}

	km.MapKeyToFrame(runeKey('u'), &frame)
	if !frame.Has(core.ActionUndo) {
		t.Error("'u' should set ActionUndo")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("'q' should report quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
