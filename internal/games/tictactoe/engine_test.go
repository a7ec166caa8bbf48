package tictactoe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64, opts ...Option) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)), opts...)
}

func mustBoard(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestBestMoveTakesWin(t *testing.T) {
	b := mustBoard(t, "XX.OO....")

	for _, depth := range []int{1, 2, 3} {
		e := seeded(1)

		idx, err := e.BestMove(b, O, depth)
		require.NoError(t, err)
		assert.Equal(t, 5, idx, "O completes its row at depth %d", depth)

		idx, err = e.BestMove(b, X, depth)
		require.NoError(t, err)
		assert.Equal(t, 2, idx, "X completes its row at depth %d", depth)
	}
}

func TestBestMoveBlocks(t *testing.T) {
	b := mustBoard(t, "XX..O....")

	for _, depth := range []int{1, 2} {
		for seed := int64(0); seed < 20; seed++ {
			idx, err := seeded(seed).BestMove(b, O, depth)
			require.NoError(t, err)
			assert.Equal(t, 2, idx, "depth %d seed %d", depth, seed)
		}
	}
}

func TestSelectMoveHardScenario(t *testing.T) {
	b := mustBoard(t, "XX.OO....")

	idx, err := seeded(3).SelectMove(b, O, DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	idx, err = seeded(3).SelectMove(b, X, DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestFullBoardNoMoveAvailable(t *testing.T) {
	full := mustBoard(t, "XOXXOOOXX")
	e := seeded(1)

	for _, d := range Difficulties {
		idx, err := e.SelectMove(full, O, d)
		assert.ErrorIs(t, err, ErrNoMoveAvailable, "difficulty %s", d)
		assert.Equal(t, -1, idx)
	}

	_, err := e.RandomMove(full)
	assert.ErrorIs(t, err, ErrNoMoveAvailable)
	_, err = e.BestMove(full, O, 2)
	assert.ErrorIs(t, err, ErrNoMoveAvailable)
}

func TestSelectMoveUnknownDifficulty(t *testing.T) {
	_, err := seeded(1).SelectMove(Board{}, O, Difficulty("expert"))
	assert.Error(t, err)
}

func TestRandomMoveUniform(t *testing.T) {
	e := seeded(42)
	const trials = 9000
	counts := make([]int, BoardSize)

	for i := 0; i < trials; i++ {
		idx, err := e.SelectMove(Board{}, O, DifficultyEasy)
		require.NoError(t, err)
		counts[idx]++
	}

	// Expected 1000 per cell; the band is more than six standard deviations wide
	for idx, n := range counts {
		assert.InDelta(t, trials/BoardSize, n, 200, "cell %d", idx)
	}
}

func TestRandomMoveOnlyEmptyCells(t *testing.T) {
	b := mustBoard(t, "XOX.O.XO.")
	e := seeded(5)

	for i := 0; i < 200; i++ {
		idx, err := e.RandomMove(b)
		require.NoError(t, err)
		assert.Contains(t, []int{3, 5, 8}, idx)
	}
}

func TestMediumProbabilityExtremes(t *testing.T) {
	b := mustBoard(t, "XX.OO....")

	smart := seeded(9, WithSmartProbability(1))
	for i := 0; i < 50; i++ {
		idx, err := smart.SelectMove(b, O, DifficultyMedium)
		require.NoError(t, err)
		assert.Equal(t, 5, idx)
	}

	// Never smart: the winning cell shows up at the random rate only
	random := seeded(9, WithSmartProbability(0))
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		idx, err := random.SelectMove(b, O, DifficultyMedium)
		require.NoError(t, err)
		seen[idx] = true
	}
	assert.Len(t, seen, 5)
}

func TestMediumMixesStrategies(t *testing.T) {
	b := mustBoard(t, "XX.OO....")
	e := seeded(2024)
	const trials = 2000

	wins := 0
	for i := 0; i < trials; i++ {
		idx, err := e.SelectMove(b, O, DifficultyMedium)
		require.NoError(t, err)
		if idx == 5 {
			wins++
		}
	}

	// 0.7 smart + 0.3 * 1/5 random = 0.76
	rate := float64(wins) / trials
	assert.InDelta(t, 0.76, rate, 0.06)
}

func TestSeededEngineIsDeterministic(t *testing.T) {
	b := mustBoard(t, "X...O....")

	for _, d := range Difficulties {
		e1, e2 := seeded(77), seeded(77)
		for i := 0; i < 20; i++ {
			m1, err1 := e1.SelectMove(b, X, d)
			m2, err2 := e2.SelectMove(b, X, d)
			require.NoError(t, err1)
			require.NoError(t, err2)
			assert.Equal(t, m1, m2, "difficulty %s call %d", d, i)
		}
	}
}

func TestLineScore(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		computer Cell
		want     int
	}{
		{"empty", ".........", O, 0},
		{"lone center for opponent", "....X....", O, 0},
		{"lone center for computer", "....X....", X, 4},
		{"opponent two in a row", "XX.......", O, -5},
		{"computer two in a row", "XX.......", X, 8},
		{"blocked line scores nothing", "XXO......", X, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineScore(mustBoard(t, tt.board), tt.computer))
		})
	}
}

func TestEvaluateJitterBounds(t *testing.T) {
	b := mustBoard(t, "XX..O....")
	base := float64(LineScore(b, O))

	exact := seeded(1, WithJitter(0))
	assert.Equal(t, base, exact.Evaluate(b, O))

	noisy := seeded(1)
	for i := 0; i < 500; i++ {
		v := noisy.Evaluate(b, O)
		assert.LessOrEqual(t, math.Abs(v-base), DefaultJitter)
	}
}

func TestMinimaxTerminalScores(t *testing.T) {
	e := seeded(1)

	assert.Equal(t, WinScore, e.Minimax(mustBoard(t, "OOOXX.X.."), O, 3, true, math.Inf(-1), math.Inf(1)))
	assert.Equal(t, LossScore, e.Minimax(mustBoard(t, "XXXOO.O.."), O, 3, true, math.Inf(-1), math.Inf(1)))
	assert.Equal(t, DrawScore, e.Minimax(mustBoard(t, "XOXXOOOXX"), O, 3, true, math.Inf(-1), math.Inf(1)))
}

// plainMinimax is an exhaustive search without pruning or cutoff.
func plainMinimax(b Board, computer Cell, maximizing bool) float64 {
	if mark, _, ok := Winner(b); ok {
		if mark == computer {
			return WinScore
		}
		return LossScore
	}
	if IsFull(b) {
		return DrawScore
	}
	mover := computer
	if !maximizing {
		mover = computer.Opponent()
	}
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, idx := range EmptyCells(b) {
		next := b
		next[idx] = mover
		v := plainMinimax(next, computer, !maximizing)
		if maximizing {
			best = math.Max(best, v)
		} else {
			best = math.Min(best, v)
		}
	}
	return best
}

func TestAlphaBetaMatchesExhaustiveSearch(t *testing.T) {
	e := seeded(1, WithJitter(0))
	boards := []string{"X...O....", "XO..X....", "X.O.O.X..", "XX..O...."}

	for _, s := range boards {
		b := mustBoard(t, s)
		for _, computer := range []Cell{X, O} {
			for _, maximizing := range []bool{true, false} {
				want := plainMinimax(b, computer, maximizing)
				got := e.Minimax(b, computer, BoardSize, maximizing, math.Inf(-1), math.Inf(1))
				assert.Equal(t, want, got, "board %s computer %s maximizing %v", s, computer, maximizing)
			}
		}
	}
}

// assertNeverLoses explores every opponent reply while the engine answers
// with its best move, and fails if the opponent ever completes a line.
func assertNeverLoses(t *testing.T, e *Engine, s *GameState, computer Cell) {
	t.Helper()
	if s.IsOver() {
		if s.Status() == StatusWon {
			require.Equal(t, computer, s.Winner(), "opponent won:\n%s", s.Board())
		}
		return
	}

	if s.Current() == computer {
		idx, err := e.BestMove(s.Board(), computer, BoardSize)
		require.NoError(t, err)
		play(t, s, idx)
		assertNeverLoses(t, e, s, computer)
		require.NoError(t, s.Undo())
		return
	}

	for _, idx := range EmptyCells(s.Board()) {
		play(t, s, idx)
		assertNeverLoses(t, e, s, computer)
		require.NoError(t, s.Undo())
	}
}

func TestFullDepthNeverLoses(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive game tree")
	}
	e := seeded(1, WithJitter(0))

	t.Run("computer moves first", func(t *testing.T) {
		assertNeverLoses(t, e, NewGameState(), X)
	})
	t.Run("computer moves second", func(t *testing.T) {
		assertNeverLoses(t, e, NewGameState(), O)
	})
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"impossible", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseDifficulty(%q)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
