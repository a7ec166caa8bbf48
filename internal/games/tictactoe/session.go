package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Mode says who plays O.
type Mode string

const (
	ModeVsCPU Mode = "cpu" // human X against the computer as O
	ModePvP   Mode = "pvp" // two humans sharing the keyboard
)

// ParseMode converts a name to a Mode. Empty selects vs CPU.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeVsCPU, "ai":
		return ModeVsCPU, nil
	case ModePvP:
		return ModePvP, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want cpu or pvp)", s)
	}
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeVsCPU:
		return "vs CPU"
	case ModePvP:
		return "Two Players"
	default:
		return string(m)
	}
}

// ComputerMark is the mark played by the computer in vs CPU mode.
const ComputerMark = O

// ErrNotYourTurn is returned when a human tries to move for the computer.
var ErrNotYourTurn = errors.New("computer is to move")

// Tally counts finished rounds.
type Tally struct {
	X    int
	O    int
	Ties int
}

// Total returns the number of finished rounds.
func (t Tally) Total() int { return t.X + t.O + t.Ties }

// Session owns the GameState of one player (or one pair of players) and the
// running win/loss/tie tally across rounds.
type Session struct {
	state      *GameState
	engine     *Engine
	mode       Mode
	difficulty Difficulty
	tally      Tally
}

// NewSession creates a session with a fresh round.
func NewSession(engine *Engine, mode Mode, difficulty Difficulty) *Session {
	if engine == nil {
		engine = NewEngine(nil)
	}
	return &Session{
		state:      NewGameState(),
		engine:     engine,
		mode:       mode,
		difficulty: difficulty,
	}
}

// State exposes the current round. Callers must mutate it only through the
// session so the tally stays consistent.
func (s *Session) State() *GameState { return s.state }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Difficulty returns the computer's difficulty.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Tally returns the cumulative results.
func (s *Session) Tally() Tally { return s.tally }

// SetMode switches between vs CPU and two players. Scores and board reset.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.ResetAll()
}

// SetDifficulty changes the difficulty without touching the board.
func (s *Session) SetDifficulty(d Difficulty) {
	s.difficulty = d
}

// ComputerTurn reports whether the computer should move now.
func (s *Session) ComputerTurn() bool {
	return s.mode == ModeVsCPU && !s.state.IsOver() && s.state.Current() == ComputerMark
}

// Play applies a human move at index.
func (s *Session) Play(index int) (MoveResult, error) {
	if s.ComputerTurn() {
		return MoveResult{}, ErrNotYourTurn
	}
	return s.apply(index)
}

// PlayComputer asks the engine for a move and applies it.
func (s *Session) PlayComputer() (MoveResult, error) {
	if s.state.IsOver() {
		return MoveResult{}, ErrGameOver
	}
	idx, err := s.engine.SelectMove(s.state.Board(), s.state.Current(), s.difficulty)
	if err != nil {
		return MoveResult{}, err
	}
	return s.apply(idx)
}

func (s *Session) apply(index int) (MoveResult, error) {
	res, err := s.state.ApplyMove(index)
	if err != nil {
		return res, err
	}
	switch res.Status {
	case StatusWon:
		if res.Winner == X {
			s.tally.X++
		} else {
			s.tally.O++
		}
	case StatusDrawn:
		s.tally.Ties++
	}
	return res, nil
}

// Undo takes back the last move. Against the computer it keeps undoing until
// the human is to move, so the computer's reply goes together with the move
// that provoked it. A finished round is reopened and its tally entry removed.
func (s *Session) Undo() error {
	if err := s.undoOne(); err != nil {
		return err
	}
	if s.mode != ModeVsCPU {
		return nil
	}
	for s.state.Current() == ComputerMark && s.state.HistoryLen() > 0 {
		if err := s.undoOne(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) undoOne() error {
	status, winner := s.state.Status(), s.state.Winner()
	if err := s.state.Undo(); err != nil {
		return err
	}
	switch status {
	case StatusWon:
		if winner == X {
			s.tally.X--
		} else {
			s.tally.O--
		}
	case StatusDrawn:
		s.tally.Ties--
	}
	return nil
}

// NewRound clears the board and keeps the tally.
func (s *Session) NewRound() {
	s.state.Reset()
}

// ResetAll clears the board and the tally.
func (s *Session) ResetAll() {
	s.state.Reset()
	s.tally = Tally{}
}
