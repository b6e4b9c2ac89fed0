package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-lines/internal/games/lines"
	"github.com/vovakirdan/color-lines/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current game",
	Long: `Print the board of the game in the save slot. Balls are shown by
color character (r red, b black, B blue, g green, y yellow, c cyan,
m magenta); '.' is an empty cell.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	g, err := loadSlot(context.Background(), e)
	if err != nil {
		return err
	}

	printView(os.Stdout, g.Snapshot().View(e.cfg.Difficulty.PreviewVisibility()))
	return nil
}

// loadSlot restores the game in the current slot.
func loadSlot(ctx context.Context, e *env) (*lines.Game, error) {
	save, err := e.store.LoadGame(ctx, flagSlot)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("no game in slot %q, run 'lines new' first", flagSlot)
	}
	if err != nil {
		return nil, err
	}
	return lines.Restore(save, newRandom())
}
