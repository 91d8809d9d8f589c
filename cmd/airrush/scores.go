package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samharte/airrush/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [limit]",
	Short: "Show the leaderboard",
	Long: `Display the top recorded runs, best first.

Examples:
  airrush scores
  airrush scores 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	limit := 10
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: invalid limit %q\n", args[0])
			os.Exit(1)
		}
		limit = n
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Leaderboard(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Air Rush")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'airrush play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %s\n", "Rank", "Name", "Score", "Coins", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %s\n", "----", "----", "-----", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-8d  %-6d  %s\n", i+1, entry.Name, entry.Score, entry.Coins, dateStr)
	}

	fmt.Println()
	if best, err := store.Best(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
