// airrush is a side-scrolling dodge-and-collect game for the terminal.
//
// Usage:
//
//	airrush play             - Start the game
//	airrush scores [limit]   - Show the leaderboard
//	airrush stats <name>     - Show aggregate stats for a player
//	airrush serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.airrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "airrush",
	Short: "Air Rush - dodge barriers and grab coins in your terminal",
	Long: `Air Rush is a terminal arcade game: keep your craft airborne, thread
the gaps between barriers, and collect coins while the game speeds up
every ten points.

Available commands:
  play     - Start the game
  scores   - View the leaderboard
  stats    - View aggregate stats for a player
  serve    - Start SSH server for remote play

Examples:
  airrush play
  airrush play --name ACE
  airrush scores 20
  airrush stats ACE
  airrush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.airrush/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
