package tictactoe

import (
	"fmt"
	"strings"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns "X", "O" or "" for an empty cell.
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Board is the 3x3 grid stored row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [BoardSize]Cell

// WinLines lists the index triples that win the game, scanned in this order.
var WinLines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// columns
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diagonals
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the mark owning the first completed line and that line.
// ok is false when no line is complete.
func Winner(b Board) (mark Cell, line [3]int, ok bool) {
	for _, ln := range WinLines {
		c := b[ln[0]]
		if c != Empty && c == b[ln[1]] && c == b[ln[2]] {
			return c, ln, true
		}
	}
	return Empty, [3]int{}, false
}

// IsFull reports whether no empty cell remains.
func IsFull(b Board) bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of empty cells in ascending order.
func EmptyCells(b Board) []int {
	cells := make([]int, 0, BoardSize)
	for i, c := range b {
		if c == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Count returns how many cells hold the given mark.
func Count(b Board, mark Cell) int {
	n := 0
	for _, c := range b {
		if c == mark {
			n++
		}
	}
	return n
}

// String renders the board as three rows using '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('\n')
		}
		if c == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// ParseBoard reads a 9-character board description. 'X' and 'O' (any case)
// are marks; '.', '-', '_' and ' ' are empty. Newlines and '|' are ignored so
// the output of Board.String parses back.
func ParseBoard(s string) (Board, error) {
	var b Board
	i := 0
	for _, r := range s {
		switch r {
		case '\n', '\r', '|':
			continue
		}
		if i >= BoardSize {
			return Board{}, fmt.Errorf("board has more than %d cells", BoardSize)
		}
		switch r {
		case 'X', 'x':
			b[i] = X
		case 'O', 'o':
			b[i] = O
		case '.', '-', '_', ' ':
			b[i] = Empty
		default:
			return Board{}, fmt.Errorf("invalid cell %q at position %d", r, i)
		}
		i++
	}
	if i != BoardSize {
		return Board{}, fmt.Errorf("board has %d cells, want %d", i, BoardSize)
	}
	return b, nil
}

// ParseMark converts "X" or "O" (any case) to a Cell.
func ParseMark(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("invalid mark %q (want X or O)", s)
	}
}
