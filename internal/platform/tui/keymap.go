package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Number keys 1-9 select a
// cell directly and are reported through cell (0-8); cell is -1 otherwise.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, cell int) {
	key := msg.String()

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.ActionPlace, int(key[0] - '1')
	}

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, -1
	case "up", "k", "w":
		return core.ActionUp, -1
	case "down", "j", "s":
		return core.ActionDown, -1
	case "left", "h", "a":
		return core.ActionLeft, -1
	case "right", "l", "d":
		return core.ActionRight, -1
	case " ", "space", "enter":
		return core.ActionPlace, -1
	case "u":
		return core.ActionUndo, -1
	case "r", "n":
		return core.ActionRestart, -1
	case "x":
		return core.ActionResetAll, -1
	case "esc", "b":
		return core.ActionBack, -1
	}

	return core.ActionNone, -1
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, cell := km.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		return true
	case cell >= 0:
		frame.SelectCell(cell)
	case action != core.ActionNone:
		frame.Set(action)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
