package main

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

func hintEngine() *tictactoe.Engine {
	return tictactoe.NewEngine(rand.New(rand.NewSource(1)), tictactoe.WithJitter(0))
}

func TestHintSuggestsWinningCell(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, hint(&out, hintEngine(), "XX.OO....", "", "hard"))

	assert.Contains(t, out.String(), "XX.\nOO.\n...")
	assert.Contains(t, out.String(), "X to move (hard): cell 3 (row 1, column 3)")
}

func TestHintFinishedBoards(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, hint(&out, hintEngine(), "XXXOO....", "", "hard"))
	assert.Contains(t, out.String(), "X has won (cells 1, 2, 3).")

	out.Reset()
	require.NoError(t, hint(&out, hintEngine(), "XOX|XOO|OXX", "", "easy"))
	assert.Contains(t, out.String(), "draw")
}

func TestHintErrors(t *testing.T) {
	tests := []struct {
		name       string
		board      string
		mark       string
		difficulty string
	}{
		{"short board", "XX", "", "hard"},
		{"bad cell", "XX.OO...Z", "", "hard"},
		{"bad mark", ".........", "Q", "hard"},
		{"bad difficulty", ".........", "", "nightmare"},
		{"unclear turn", "XX.......", "", "hard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, hint(&out, hintEngine(), tt.board, tt.mark, tt.difficulty))
		})
	}
}

func TestSideToMove(t *testing.T) {
	tests := []struct {
		board    string
		mark     string
		expected tictactoe.Cell
	}{
		{".........", "", tictactoe.X},
		{"X........", "", tictactoe.O},
		{"X...O....", "", tictactoe.X},
		{"X........", "x", tictactoe.X},
	}

	for _, tt := range tests {
		b, err := tictactoe.ParseBoard(tt.board)
		require.NoError(t, err)
		got, err := sideToMove(b, tt.mark)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "board %s mark %q", tt.board, tt.mark)
	}
}

func TestPort(t *testing.T) {
	assert.Equal(t, "23234", port(":23234"))
	assert.Equal(t, "2222", port("0.0.0.0:2222"))
	assert.Equal(t, "22", port("22"))
}
