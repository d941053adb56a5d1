package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/michelv/squish/internal/platform/tui"
	"github.com/michelv/squish/internal/storage"
)

var (
	flagScoresEndless     bool
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Show the high score table for the campaign (or --endless) along with
aggregated run statistics. With --interactive, open the full scoreboard
browser instead.

Examples:
  squish scores
  squish scores --endless
  squish scores --limit 25
  squish scores --interactive
  squish scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresEndless, "endless", false, "Show scores for endless mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse scores and runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Clear all saved scores for the selected mode")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	gameID := "squish"
	label := "Campaign"
	if flagScoresEndless {
		gameID = "squish_endless"
		label = "Endless"
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", label)
		return
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Top %d\n\n", label, flagScoresLimit)

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet. Play a round first!")
		return
	}

	fmt.Printf("  %-5s %-10s %s\n", "Rank", "Score", "Date")
	fmt.Println("  -------------------------------------")
	for i, entry := range scores {
		fmt.Printf("  %-5d %-10d %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err == nil && best > 0 {
		fmt.Printf("\n  Best: %d\n", best)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Printf("\n  Runs: %d   Avg score: %.0f   Best level: %d   Enemies squished: %d\n",
			stats.RunsCount, stats.AvgScore, stats.BestLevel, stats.TotalSquished)
	}
}
