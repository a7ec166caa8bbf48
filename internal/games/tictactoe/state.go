package tictactoe

import "errors"

// Status is the lifecycle phase of a round.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Errors returned by state transitions and the engine.
var (
	ErrOutOfBounds     = errors.New("cell index out of bounds")
	ErrInvalidMove     = errors.New("cell already occupied")
	ErrGameOver        = errors.New("game already finished")
	ErrNoHistory       = errors.New("no move to undo")
	ErrNoMoveAvailable = errors.New("no move available")
)

// MoveResult describes the state reached by an accepted move.
type MoveResult struct {
	Index  int
	Mark   Cell
	Status Status
	Winner Cell
	// Line is the completed triple; only meaningful when HasLine is true.
	Line    [3]int
	HasLine bool
}

type snapshot struct {
	board   Board
	current Cell
}

// GameState is a single round: board, side to move, outcome and undo stack.
// It is owned by one session and is not safe for concurrent use.
type GameState struct {
	board   Board
	current Cell
	status  Status
	winner  Cell
	line    [3]int
	history []snapshot
}

// NewGameState returns an empty board with X to move.
func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

// Reset clears the board, gives X the move and empties the history.
func (s *GameState) Reset() {
	s.board = Board{}
	s.current = X
	s.status = StatusInProgress
	s.winner = Empty
	s.line = [3]int{}
	s.history = nil
}

// ApplyMove places the current player's mark at index.
// On error the state is left untouched.
func (s *GameState) ApplyMove(index int) (MoveResult, error) {
	if index < 0 || index >= BoardSize {
		return MoveResult{}, ErrOutOfBounds
	}
	if s.status != StatusInProgress {
		return MoveResult{}, ErrGameOver
	}
	if s.board[index] != Empty {
		return MoveResult{}, ErrInvalidMove
	}

	s.history = append(s.history, snapshot{board: s.board, current: s.current})

	mark := s.current
	s.board[index] = mark
	s.evaluateTerminal()
	if s.status == StatusInProgress {
		s.current = mark.Opponent()
	}

	return MoveResult{
		Index:   index,
		Mark:    mark,
		Status:  s.status,
		Winner:  s.winner,
		Line:    s.line,
		HasLine: s.status == StatusWon,
	}, nil
}

// Undo restores the position before the last accepted move. The round is
// always reopened, even if the undone move had finished it.
func (s *GameState) Undo() error {
	if len(s.history) == 0 {
		return ErrNoHistory
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.board = last.board
	s.current = last.current
	s.status = StatusInProgress
	s.winner = Empty
	s.line = [3]int{}
	return nil
}

// evaluateTerminal derives status, winner and line from the board.
func (s *GameState) evaluateTerminal() {
	if mark, line, ok := Winner(s.board); ok {
		s.status = StatusWon
		s.winner = mark
		s.line = line
		return
	}
	if IsFull(s.board) {
		s.status = StatusDrawn
		s.winner = Empty
		return
	}
	s.status = StatusInProgress
}

// Board returns a copy of the board.
func (s *GameState) Board() Board { return s.board }

// Current returns the mark that moves next (or moved last, once finished).
func (s *GameState) Current() Cell { return s.current }

// Status returns the round status.
func (s *GameState) Status() Status { return s.status }

// Winner returns the winning mark, or Empty.
func (s *GameState) Winner() Cell { return s.winner }

// WinningLine returns the completed line when the round was won.
func (s *GameState) WinningLine() ([3]int, bool) {
	return s.line, s.status == StatusWon
}

// IsOver reports whether the round has been won or drawn.
func (s *GameState) IsOver() bool { return s.status != StatusInProgress }

// HistoryLen returns the number of moves that can be undone.
func (s *GameState) HistoryLen() int { return len(s.history) }
