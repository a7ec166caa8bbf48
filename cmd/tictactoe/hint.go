package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

var (
	flagHintMark       string
	flagHintDifficulty string
)

var hintCmd = &cobra.Command{
	Use:   "hint <board>",
	Short: "Ask the computer which cell it would take",
	Long: `Print the board, its status and the computer's move for it.

The board is 9 characters read row by row: X and O are marks, '.', '-' and
'_' are empty cells. '|' separators are ignored. Without --mark the side to
move is worked out from the number of marks.

Examples:
  tictactoe hint "XX.OO...." --difficulty hard
  tictactoe hint "X..|.O.|..X" --mark O
  tictactoe hint "........." --difficulty easy --seed 7`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagHintMark, "mark", "", "Mark to move: X or O (inferred when empty)")
	hintCmd.Flags().StringVarP(&flagHintDifficulty, "difficulty", "d", "hard", "Difficulty: easy, medium, hard")
}

func runHint(cmd *cobra.Command, args []string) {
	e, err := loadEnv(cmd.ErrOrStderr(), "", flagHintDifficulty)
	if err != nil {
		fatalf("%v", err)
	}
	defer e.close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := tictactoe.EngineFromConfig(e.cfg.Engine, rand.New(rand.NewSource(seed)))

	if err := hint(cmd.OutOrStdout(), engine, args[0], flagHintMark, e.cfg.Difficulty); err != nil {
		fatalf("%v", err)
	}
}

// hint writes the board, its status and the suggested move to w.
func hint(w io.Writer, engine *tictactoe.Engine, boardArg, markArg, difficulty string) error {
	board, err := tictactoe.ParseBoard(boardArg)
	if err != nil {
		return err
	}
	d, err := tictactoe.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, board.String())
	fmt.Fprintln(w)

	if mark, line, ok := tictactoe.Winner(board); ok {
		fmt.Fprintf(w, "%s has won (cells %s).\n", mark, cellList(line[:]))
		return nil
	}
	if tictactoe.IsFull(board) {
		fmt.Fprintln(w, "The board is full: draw.")
		return nil
	}

	mark, err := sideToMove(board, markArg)
	if err != nil {
		return err
	}

	idx, err := engine.SelectMove(board, mark, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s to move (%s): cell %d (row %d, column %d)\n",
		mark, d, idx+1, idx/3+1, idx%3+1)
	return nil
}

func sideToMove(board tictactoe.Board, markArg string) (tictactoe.Cell, error) {
	if markArg != "" {
		return tictactoe.ParseMark(markArg)
	}
	nx, no := tictactoe.Count(board, tictactoe.X), tictactoe.Count(board, tictactoe.O)
	switch nx - no {
	case 0:
		return tictactoe.X, nil
	case 1:
		return tictactoe.O, nil
	default:
		return tictactoe.Empty, fmt.Errorf("cannot tell whose turn it is (%d X, %d O); pass --mark", nx, no)
	}
}

func cellList(cells []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c + 1)
	}
	return strings.Join(parts, ", ")
}
