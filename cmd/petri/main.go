// petri is a terminal petri-dish game: steer a cell around with the mouse,
// absorb food pellets, and grow.
//
// Usage:
//
//	petri play               - Run the simulation in the current terminal
//	petri serve              - Start SSH server for remote play
//	petri scores             - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.petri/scores.db)
//
// Set GEMINI_API_KEY to enable cell descriptions (press G in game).
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
	Use:   "petri",
	Short: "Petri - grow a cell in your terminal",
	Long: `Petri is a terminal game where you steer a single cell around a dish,
absorbing food pellets to grow. The bigger you get, the slower you move.

Available commands:
  play     - Run the simulation in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  petri play
  petri play --name Blobby --difficulty easy
  petri serve --ssh :2222
  petri scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.petri/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
