package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top sessions and statistics for a variant.

Examples:
  snake scores classic
  snake scores effects --limit 20
  snake scores effects --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	v, err := registry.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see variants)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(v.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", v.Title)
		return nil
	}

	sessions, err := store.TopSessions(v.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", v.Title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", v.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "End", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "---", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-6d  %-6d  %-6s  %s\n", i+1, s.Score, s.Length, s.Reason, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(v.ID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.Stats(v.ID); err == nil {
		fmt.Printf("Games: %d  Average: %.1f  Longest snake: %d\n", stats.GamesCount, stats.AvgScore, stats.LongestTail)
	}
	return nil
}
