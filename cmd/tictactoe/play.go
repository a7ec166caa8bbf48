package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [cpu|pvp]",
	Short: "Start a game",
	Long: `Start a game directly, skipping the menu.

Without an argument the saved mode is used (vs CPU unless changed).

Controls:
  Arrows/hjkl/wasd - Move the cursor
  Enter/Space      - Place your mark
  1-9              - Place in that cell (1 is top left)
  U                - Undo
  R/N              - New round (keeps the tally)
  X                - Reset the tally
  Ctrl+S           - Save a screenshot
  Esc/B, Q         - Quit

Difficulty:
  easy   - The computer picks random empty cells
  medium - Usually looks one move ahead
  hard   - Looks two moves ahead

Examples:
  tictactoe play
  tictactoe play cpu --difficulty hard
  tictactoe play pvp
  tictactoe play --config ./my-engine.yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"cpu", "pvp"},
	Run:       runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		m, err := tictactoe.ParseMode(args[0])
		if err != nil {
			fatalf("%v", err)
		}
		mode = string(m)
	}

	e, err := loadEnv(io.Discard, mode, flagDifficulty)
	if err != nil {
		fatalf("%v", err)
	}
	defer e.close()

	gameID := tictactoe.GameIDVsCPU
	if e.cfg.Mode == string(tictactoe.ModePvP) {
		gameID = tictactoe.GameIDPvP
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating game: %v", err)
	}

	store := e.openStore()
	if store != nil {
		defer store.Close()
	}

	e.logger.Info("game started", "game", gameID, "difficulty", e.cfg.Difficulty)
	if _, err := tui.Run(game, store, runtimeConfig(), e.modelOptions()...); err != nil {
		e.logger.Error("game failed", "error", err)
		fatalf("running game: %v", err)
	}
}
