package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-lines/internal/games/lines"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
	"github.com/vovakirdan/color-lines/internal/storage"
)

var flagName string

var moveCmd = &cobra.Command{
	Use:   "move <x1> <y1> <x2> <y2>",
	Short: "Move a ball",
	Long: `Move the ball at (x1, y1) to the empty cell (x2, y2). The move is
only allowed if the ball can get there through empty cells, moving up,
down, left or right.

When the move ends the game, the final score is recorded under --name.

Examples:
  lines move 0 0 4 4
  lines move 3 2 3 7 --name alice`,
	Args: cobra.ExactArgs(4),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagName, "name", "anonymous", "Player name for the high score table")
}

func parseCoords(args []string) (core.Coord, core.Coord, error) {
	var n [4]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return core.Coord{}, core.Coord{}, fmt.Errorf("invalid coordinate %q", a)
		}
		n[i] = v
	}
	return core.C(n[0], n[1]), core.C(n[2], n[3]), nil
}

func runMove(cmd *cobra.Command, args []string) error {
	from, to, err := parseCoords(args)
	if err != nil {
		return err
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := context.Background()
	g, err := loadSlot(ctx, e)
	if err != nil {
		return err
	}

	turn, err := g.Move(from, to)
	if errors.Is(err, lines.ErrGameOver) {
		if ferr := finishGame(ctx, e, g); ferr != nil {
			return ferr
		}
		return fmt.Errorf("%w\nRun 'lines new' to start over.", err)
	}
	if err != nil {
		return err
	}
	if !turn.Move.Accepted() {
		fmt.Printf("Move %s -> %s rejected: %s\n", from, to, turn.Move.Reason)
		return &exitError{code: 2}
	}
	e.logger.Debug("move", "from", from, "to", to, "gained", turn.Gained(), "placed", len(turn.Placed))

	if turn.GameOver {
		printTurn(e, g, turn)
		fmt.Println()
		fmt.Printf("Game over! Final score: %d\n", g.Score())
		return finishGame(ctx, e, g)
	}
	if err := e.store.SaveGame(ctx, flagSlot, g.Export(time.Now())); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	printTurn(e, g, turn)
	return nil
}

// finishGame records the final score unless that already happened, then
// saves the slot so the recorded flag survives. After a failed recording
// the flag stays unset and the next move on the slot tries again.
func finishGame(ctx context.Context, e *env, g *lines.Game) error {
	recorded, recErr := storage.RecordGame(ctx, e.store, g, flagName)
	if err := e.store.SaveGame(ctx, flagSlot, g.Export(time.Now())); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	if recErr != nil {
		return fmt.Errorf("recording score: %w\nRun 'lines move' again to retry.", recErr)
	}
	if recorded {
		fmt.Printf("Recorded final score %d for %s\n", g.Score(), flagName)
	}
	return nil
}

func printTurn(e *env, g *lines.Game, turn lines.TurnResult) {
	if line := turn.Move.Line; line.Scored() {
		fmt.Printf("Cleared %d balls (%s): +%d\n", line.Length, line.Axis, line.Score)
	}
	if turn.PlacementScore > 0 {
		fmt.Printf("New balls completed a line: +%d\n", turn.PlacementScore)
	}
	fmt.Println()
	printView(os.Stdout, g.Snapshot().View(e.cfg.Difficulty.PreviewVisibility()))
}
