package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick mode and difficulty from a menu",
	Long: `Start in interactive menu mode.

Choose vs CPU or two players, then the computer's difficulty. Esc in a game
returns to the menu. The last choice is remembered in ~/.tictactoe/settings.yaml.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Tab          - Results
  Q            - Quit

Examples:
  tictactoe menu
  tictactoe menu --fps 60
  tictactoe menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	e, err := loadEnv(io.Discard, "", "")
	if err != nil {
		fatalf("%v", err)
	}
	defer e.close()

	store := e.openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(e.settings, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		if res.Quit {
			return
		}

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		e.remember(res)

		game, err := tui.NewGame(res)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		e.logger.Info("game started", "game", res.GameID, "difficulty", res.Difficulty)
		back, err := tui.Run(game, store, cfg, e.modelOptions()...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			return
		}
	}
}

// remember stores the chosen mode and difficulty as the next default.
func (e *env) remember(res tui.MenuResult) {
	e.settings.Mode = res.Mode
	if res.Difficulty != "" {
		e.settings.Difficulty = res.Difficulty
	}
	if err := config.SaveSettings(config.SettingsPath(), e.settings); err != nil {
		e.logger.Warn("could not save settings", "error", err)
	}
}
