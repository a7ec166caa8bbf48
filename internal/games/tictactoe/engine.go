package tictactoe

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Difficulty selects the computer's move strategy.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // uniformly random
	DifficultyMedium Difficulty = "medium" // shallow minimax most of the time, random otherwise
	DifficultyHard   Difficulty = "hard"   // deeper minimax
)

// Difficulties lists the supported difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts a name to a Difficulty. Empty selects easy.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Title returns the capitalized difficulty name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Scores returned by Minimax for finished positions.
const (
	WinScore  = 10.0
	LossScore = -10.0
	DrawScore = 0.0
)

// Default engine tuning.
const (
	DefaultMediumDepth      = 1
	DefaultHardDepth        = 2
	DefaultSmartProbability = 0.7
	DefaultJitter           = 0.1
)

// Engine picks moves for the computer player. It holds no game state; the
// random source is the only thing it mutates.
type Engine struct {
	rng              *rand.Rand
	mediumDepth      int
	hardDepth        int
	smartProbability float64
	jitter           float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithMediumDepth sets the search depth used by the smart branch of medium.
func WithMediumDepth(depth int) Option {
	return func(e *Engine) { e.mediumDepth = depth }
}

// WithHardDepth sets the search depth used by hard.
func WithHardDepth(depth int) Option {
	return func(e *Engine) { e.hardDepth = depth }
}

// WithSmartProbability sets how often medium delegates to minimax.
func WithSmartProbability(p float64) Option {
	return func(e *Engine) { e.smartProbability = p }
}

// WithJitter sets the half-width of the random noise added by Evaluate.
// Zero makes the search fully deterministic.
func WithJitter(j float64) Option {
	return func(e *Engine) { e.jitter = j }
}

// NewEngine creates an engine drawing randomness from rng.
// A nil rng is replaced by one seeded from the clock.
func NewEngine(rng *rand.Rand, opts ...Option) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Engine{
		rng:              rng,
		mediumDepth:      DefaultMediumDepth,
		hardDepth:        DefaultHardDepth,
		smartProbability: DefaultSmartProbability,
		jitter:           DefaultJitter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SelectMove returns the cell the computer playing `player` should take.
func (e *Engine) SelectMove(board Board, player Cell, d Difficulty) (int, error) {
	if IsFull(board) {
		return -1, ErrNoMoveAvailable
	}

	switch d {
	case DifficultyEasy:
		return e.RandomMove(board)
	case DifficultyMedium:
		if e.rng.Float64() < e.smartProbability {
			return e.BestMove(board, player, e.mediumDepth)
		}
		return e.RandomMove(board)
	case DifficultyHard:
		return e.BestMove(board, player, e.hardDepth)
	default:
		return -1, fmt.Errorf("unknown difficulty %q", d)
	}
}

// RandomMove picks uniformly among the empty cells.
func (e *Engine) RandomMove(board Board) (int, error) {
	cells := EmptyCells(board)
	if len(cells) == 0 {
		return -1, ErrNoMoveAvailable
	}
	return cells[e.rng.Intn(len(cells))], nil
}

// BestMove searches every empty cell for the computer and returns the first
// one reaching the highest minimax score.
func (e *Engine) BestMove(board Board, computer Cell, depth int) (int, error) {
	cells := EmptyCells(board)
	if len(cells) == 0 {
		return -1, ErrNoMoveAvailable
	}

	best := cells[0]
	bestScore := math.Inf(-1)
	for _, idx := range cells {
		next := board
		next[idx] = computer
		score := e.Minimax(next, computer, depth, false, math.Inf(-1), math.Inf(1))
		if score > bestScore {
			bestScore = score
			best = idx
		}
	}
	return best, nil
}

// Minimax scores board from the computer's point of view. maximizing is true
// when the computer is the side to move.
func (e *Engine) Minimax(board Board, computer Cell, depth int, maximizing bool, alpha, beta float64) float64 {
	if mark, _, ok := Winner(board); ok {
		if mark == computer {
			return WinScore
		}
		return LossScore
	}
	if IsFull(board) {
		return DrawScore
	}
	if depth <= 0 {
		return e.Evaluate(board, computer)
	}

	mover := computer
	if !maximizing {
		mover = computer.Opponent()
	}

	if maximizing {
		value := math.Inf(-1)
		for i := range board {
			if board[i] != Empty {
				continue
			}
			next := board
			next[i] = mover
			value = math.Max(value, e.Minimax(next, computer, depth-1, false, alpha, beta))
			alpha = math.Max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for i := range board {
		if board[i] != Empty {
			continue
		}
		next := board
		next[i] = mover
		value = math.Min(value, e.Minimax(next, computer, depth-1, true, alpha, beta))
		beta = math.Min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}

// Evaluate is the heuristic used at the depth cutoff. It is not an exact
// game value: each open line with two computer marks scores +5, with one
// computer mark +1, with two opponent marks -5, plus a small random jitter.
func (e *Engine) Evaluate(board Board, computer Cell) float64 {
	score := float64(LineScore(board, computer))
	if e.jitter > 0 {
		score += e.rng.Float64()*2*e.jitter - e.jitter
	}
	return score
}

// LineScore is the deterministic part of Evaluate.
func LineScore(board Board, computer Cell) int {
	opponent := computer.Opponent()
	score := 0
	for _, ln := range WinLines {
		own, other := 0, 0
		for _, idx := range ln {
			switch board[idx] {
			case computer:
				own++
			case opponent:
				other++
			}
		}
		switch {
		case own == 2 && other == 0:
			score += 5
		case own == 1 && other == 0:
			score++
		case other == 2 && own == 0:
			score -= 5
		}
	}
	return score
}
