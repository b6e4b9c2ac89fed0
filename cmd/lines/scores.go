package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-lines/internal/registry"
	"github.com/vovakirdan/color-lines/internal/storage"
)

var (
	flagRecords bool
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a variant (default: from config).

With --records the list is printed as plain "<name> - <score>" lines.

Examples:
  lines scores
  lines scores lines_mini
  lines scores --records`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecords, "records", false, "Print as a plain records list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	variantID := e.cfg.Variant
	if len(args) == 1 {
		variantID = args[0]
	}
	variant, err := registry.Get(variantID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'lines list' to see available variants.", err)
	}

	ctx := context.Background()
	if flagClear {
		if err := e.store.ClearScores(ctx, variant.ID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s\n", variant.Title)
		return nil
	}

	scores, err := e.store.TopScores(ctx, variant.ID, storage.MaxRecords)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if flagRecords {
		if out := storage.FormatRecords(storage.RecordsFromScores(scores)); out != "" {
			fmt.Println(out)
		}
		return nil
	}

	fmt.Printf("High Scores - %s\n", variant.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lines new %s' to set the first high score!\n", variant.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := e.store.Stats(ctx, variant.ID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
