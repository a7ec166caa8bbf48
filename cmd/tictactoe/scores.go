package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagScoresGame  string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show results and tallies",
	Long: `Display the win/loss/draw tally per mode and difficulty, followed by
the most recent rounds.

Examples:
  tictactoe scores
  tictactoe scores --game tictactoe_pvp
  tictactoe scores --limit 25
  tictactoe scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresGame, "game", "", "Only show this game ID (tictactoe or tictactoe_pvp)")
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of recent rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete stored results (for --game, or all)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening results database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(flagScoresGame); err != nil {
			fatalf("%v", err)
		}
		fmt.Println("Results cleared.")
		return
	}

	if err := printTallies(store); err != nil {
		fatalf("%v", err)
	}
	if err := printRecent(store, flagScoresGame, flagScoresLimit); err != nil {
		fatalf("%v", err)
	}
}

func printTallies(store *storage.Store) error {
	rows, err := store.Tallies()
	if err != nil {
		return err
	}

	fmt.Println("Tally")
	fmt.Println()
	if len(rows) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tictactoe play' to play the first one!")
		return nil
	}

	fmt.Printf("  %-12s  %-8s  %6s  %6s  %6s  %6s\n", "Mode", "Level", "X", "O", "Draws", "Total")
	fmt.Printf("  %-12s  %-8s  %6s  %6s  %6s  %6s\n", "----", "-----", "-", "-", "-----", "-----")
	for _, r := range rows {
		mode, _ := tictactoe.ParseMode(r.Mode)
		level := "-"
		if r.Difficulty != "" {
			level = tictactoe.Difficulty(r.Difficulty).Title()
		}
		fmt.Printf("  %-12s  %-8s  %6d  %6d  %6d  %6d\n",
			mode, level, r.Tally.XWins, r.Tally.OWins, r.Tally.Draws, r.Tally.Total())
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println()
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %s: %d rounds, %.1f moves on average, last played %s\n",
			id, s.Rounds, s.AvgMoves, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printRecent(store *storage.Store, gameID string, limit int) error {
	results, err := store.RecentResults(gameID, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent rounds")
	fmt.Println()
	fmt.Printf("  %-16s  %-12s  %-8s  %-6s  %s\n", "Date", "Mode", "Level", "Winner", "Moves")
	fmt.Printf("  %-16s  %-12s  %-8s  %-6s  %s\n", "----", "----", "-----", "------", "-----")
	for _, r := range results {
		mode, _ := tictactoe.ParseMode(r.Mode)
		level := "-"
		if r.Difficulty != "" {
			level = tictactoe.Difficulty(r.Difficulty).Title()
		}
		winner := r.Winner
		if r.IsDraw() {
			winner = "draw"
		}
		fmt.Printf("  %-16s  %-12s  %-8s  %-6s  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), mode, level, winner, r.Moves)
	}
	return nil
}
