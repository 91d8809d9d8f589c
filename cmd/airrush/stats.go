package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samharte/airrush/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show aggregate stats for a player",
	Long: `Display games played, best and average score, and total coins for
the given player name.

Examples:
  airrush stats ACE`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stats - %s\n", name)
	fmt.Println()

	if stats.GamesPlayed == 0 {
		fmt.Println("No runs recorded for this player.")
		return
	}

	fmt.Printf("  Games played:   %d\n", stats.GamesPlayed)
	fmt.Printf("  Best score:     %d\n", stats.BestScore)
	fmt.Printf("  Average score:  %.1f\n", stats.AverageScore)
	fmt.Printf("  Total coins:    %d\n", stats.TotalCoins)
}
