// squish is a turn-based arcade puzzle for the terminal: push the rock
// chains, crush every enemy, do not get cornered.
//
// Usage:
//
//	squish play              - Play the campaign
//	squish play --endless    - Play endless generated fields
//	squish levels            - List campaign levels
//	squish scores            - Show high scores
//	squish serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.squish/scores.db)
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
	Use:   "squish",
	Short: "Squish - crush enemies with rock chains in your terminal",
	Long: `Squish is a turn-based grid puzzle. You push chains of rocks across the
field; an enemy caught between a moving rock and something solid is
squished. Clear every enemy to win the level, and never let one touch you.

Available commands:
  play     - Play the campaign or endless mode
  levels   - List campaign levels
  scores   - View high scores and run history
  serve    - Start SSH server for remote play

Examples:
  squish play
  squish play --endless
  squish play --difficulty hard --level 3
  squish scores --interactive
  squish serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.squish/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
