package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and difficulties",
	Long:  `Shows the registered game modes and the computer's difficulty levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	fmt.Println()
	for _, d := range tictactoe.Difficulties {
		fmt.Printf("  %s\n", d)
	}

	fmt.Println()
	fmt.Println("Run 'tictactoe play [cpu|pvp] --difficulty <level>' to play.")
}
