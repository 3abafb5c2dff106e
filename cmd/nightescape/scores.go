package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightescape/internal/games/escape"
	"github.com/vovakirdan/nightescape/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs: most notes first, escapes before
captures on a tie, then the faster run.

Examples:
  nightescape scores
  nightescape scores --limit 25
  nightescape scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(escape.ID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	runs, err := store.TopRuns(escape.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Escape the Night")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'nightescape play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-4s  %-7s  %-5s  %-6s  %s\n", "Rank", "Notes", "Keys", "Result", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-5s  %-4s  %-7s  %-5s  %-6s  %s\n", "----", "-----", "----", "------", "-----", "----", "----")
	for i, r := range runs {
		played := time.Duration(r.Ticks) * time.Second / time.Duration(flagFPS)
		fmt.Printf("  %-4d  %-5d  %-4d  %-7s  %-5d  %-6s  %s\n",
			i+1, r.Score, r.Keys, r.Outcome, r.LevelReached,
			played.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(escape.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Escapes: %d  Best: %d  Average: %.1f\n",
			stats.Runs, stats.Escapes, stats.BestScore, stats.AvgScore)
	}
	return nil
}
