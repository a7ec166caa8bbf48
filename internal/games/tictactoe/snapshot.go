package tictactoe

import "strings"

// Snapshot is a flat view of a running game for tests and debugging.
// Uses primitive types only.
type Snapshot struct {
	Board      string // 9 characters, '.' for empty
	Current    string
	Status     string
	Winner     string
	Moves      int
	Cursor     int
	Mode       string
	Difficulty string
	TallyX     int
	TallyO     int
	Ties       int
	CPUWait    int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	st := g.session.State()
	t := g.session.Tally()
	return Snapshot{
		Board:      strings.ReplaceAll(st.Board().String(), "\n", ""),
		Current:    st.Current().String(),
		Status:     st.Status().String(),
		Winner:     st.Winner().String(),
		Moves:      st.HistoryLen(),
		Cursor:     g.cursor,
		Mode:       string(g.mode),
		Difficulty: string(g.session.Difficulty()),
		TallyX:     t.X,
		TallyO:     t.O,
		Ties:       t.Ties,
		CPUWait:    g.cpuWait,
	}
}
