package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, s *GameState, moves ...int) MoveResult {
	t.Helper()
	var res MoveResult
	for _, m := range moves {
		var err error
		res, err = s.ApplyMove(m)
		require.NoError(t, err, "move %d", m)
	}
	return res
}

func TestNewGameState(t *testing.T) {
	s := NewGameState()

	assert.Equal(t, Board{}, s.Board())
	assert.Equal(t, X, s.Current())
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, Empty, s.Winner())
	assert.Equal(t, 0, s.HistoryLen())
	assert.False(t, s.IsOver())
}

func TestApplyMoveAlternates(t *testing.T) {
	s := NewGameState()

	res := play(t, s, 4)
	assert.Equal(t, MoveResult{Index: 4, Mark: X, Status: StatusInProgress}, res)
	assert.Equal(t, O, s.Current())

	play(t, s, 0)
	assert.Equal(t, X, s.Current())
	assert.Equal(t, O, s.Board()[0])
	assert.Equal(t, 2, s.HistoryLen())
}

func TestApplyMoveWin(t *testing.T) {
	s := NewGameState()
	res := play(t, s, 0, 3, 1, 4, 2)

	assert.Equal(t, StatusWon, res.Status)
	assert.Equal(t, X, res.Winner)
	assert.True(t, res.HasLine)
	assert.Equal(t, [3]int{0, 1, 2}, res.Line)

	line, ok := s.WinningLine()
	assert.True(t, ok)
	assert.Equal(t, [3]int{0, 1, 2}, line)
	assert.Equal(t, X, s.Winner())
	// The winner stays as the current player once the round is over
	assert.Equal(t, X, s.Current())
	assert.True(t, s.IsOver())
}

func TestApplyMoveDraw(t *testing.T) {
	s := NewGameState()
	res := play(t, s, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	assert.Equal(t, StatusDrawn, res.Status)
	assert.Equal(t, Empty, res.Winner)
	assert.False(t, res.HasLine)
	assert.True(t, IsFull(s.Board()))
	_, ok := s.WinningLine()
	assert.False(t, ok)
}

func TestApplyMoveRejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   []int
		move    int
		wantErr error
	}{
		{"occupied", []int{4}, 4, ErrInvalidMove},
		{"negative index", nil, -1, ErrOutOfBounds},
		{"index past end", nil, 9, ErrOutOfBounds},
		{"after win", []int{0, 3, 1, 4, 2}, 8, ErrGameOver},
		{"after win on occupied cell", []int{0, 3, 1, 4, 2}, 0, ErrGameOver},
		{"after draw", []int{0, 1, 2, 4, 3, 5, 7, 6, 8}, 0, ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameState()
			play(t, s, tt.setup...)

			board, current, status, hist := s.Board(), s.Current(), s.Status(), s.HistoryLen()

			_, err := s.ApplyMove(tt.move)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, board, s.Board())
			assert.Equal(t, current, s.Current())
			assert.Equal(t, status, s.Status())
			assert.Equal(t, hist, s.HistoryLen())
		})
	}
}

func TestUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 50; game++ {
		s := NewGameState()
		for !s.IsOver() {
			cells := EmptyCells(s.Board())
			m := cells[rng.Intn(len(cells))]

			before, player := s.Board(), s.Current()
			play(t, s, m)
			require.NoError(t, s.Undo())

			require.Equal(t, before, s.Board())
			require.Equal(t, player, s.Current())
			require.Equal(t, StatusInProgress, s.Status())

			play(t, s, m)
			// Non-empty cells always equal the number of moves on the stack
			require.Equal(t, s.HistoryLen(), BoardSize-len(EmptyCells(s.Board())))
		}
	}
}

func TestUndoReopensFinishedRound(t *testing.T) {
	s := NewGameState()
	play(t, s, 0, 3, 1, 4, 2)
	require.True(t, s.IsOver())

	require.NoError(t, s.Undo())
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, Empty, s.Winner())
	assert.Equal(t, X, s.Current())
	assert.Equal(t, Empty, s.Board()[2])

	// The reopened round accepts a different move
	res := play(t, s, 8)
	assert.Equal(t, StatusInProgress, res.Status)
}

func TestUndoEmptyHistory(t *testing.T) {
	s := NewGameState()

	assert.ErrorIs(t, s.Undo(), ErrNoHistory)
	assert.Equal(t, Board{}, s.Board())
	assert.Equal(t, X, s.Current())
	assert.Equal(t, StatusInProgress, s.Status())
}

func TestReset(t *testing.T) {
	s := NewGameState()
	play(t, s, 0, 3, 1, 4, 2)

	s.Reset()
	assert.Equal(t, Board{}, s.Board())
	assert.Equal(t, X, s.Current())
	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, 0, s.HistoryLen())
	assert.ErrorIs(t, s.Undo(), ErrNoHistory)
}
