// Package tui runs tic-tac-toe in the terminal with Bubble Tea: the game
// loop, key mapping, menus, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// model that scheduled it so a model never runs another model's loop.
type TickMsg struct {
	At  time.Time
	Gen int64
}

var tickGen atomic.Int64

func nextTickGen() int64 { return tickGen.Add(1) }

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen int64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
