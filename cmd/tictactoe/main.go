// tictactoe plays tic-tac-toe in the terminal, against the computer or a
// friend, locally or over SSH.
//
// Usage:
//
//	tictactoe menu              - Pick mode and difficulty interactively
//	tictactoe play [cpu|pvp]    - Start a game directly
//	tictactoe hint <board>      - Ask the computer for a move
//	tictactoe scores            - Show results and tallies
//	tictactoe settings          - Show or change saved preferences
//	tictactoe serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible computer moves
//	--db <path>       - Set database path (default: ~/.tictactoe/results.db)
//	--config <path>   - Use a custom engine config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe in your terminal",
	Long: `Play tic-tac-toe in the terminal against a computer opponent with three
difficulty levels, or against a friend on the same keyboard.

Available commands:
  menu      - Interactive mode and difficulty picker
  play      - Start a game directly
  hint      - Ask the computer which cell it would take
  scores    - View results and win/loss/draw tallies
  settings  - Show or change saved preferences
  serve     - Start SSH server for remote play

Examples:
  tictactoe menu
  tictactoe play --difficulty hard
  tictactoe play pvp
  tictactoe hint "XX.OO...." --mark X
  tictactoe serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(hintCmd)
}
