package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-lines/internal/games/lines"
)

var newCmd = &cobra.Command{
	Use:   "new [variant]",
	Short: "Start a new game",
	Long: `Start a new game and store it in the save slot, replacing whatever
was there. The variant defaults to the one in the config.

Examples:
  lines new
  lines new lines_mini
  lines new --slot practice --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	variant := e.cfg.Variant
	if len(args) == 1 {
		variant = args[0]
	}

	g, err := lines.New(variant, newRandom())
	if err != nil {
		return fmt.Errorf("%w\nRun 'lines list' to see available variants.", err)
	}

	ctx := context.Background()
	if err := e.store.SaveGame(ctx, flagSlot, g.Export(time.Now())); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	e.logger.Debug("game started", "id", g.ID(), "variant", variant, "slot", flagSlot)

	fmt.Printf("New %s game in slot %q\n\n", g.Variant().Title, flagSlot)
	printView(os.Stdout, g.Snapshot().View(e.cfg.Difficulty.PreviewVisibility()))
	return nil
}
