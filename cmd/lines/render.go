package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/color-lines/internal/games/lines"
)

// printView writes the board with coordinates, followed by the score
// line and whatever the difficulty reveals of the next balls.
func printView(w io.Writer, v lines.View) {
	var header strings.Builder
	header.WriteString("   ")
	for x := 0; x < v.Size; x++ {
		fmt.Fprintf(&header, "%d", x%10)
	}
	fmt.Fprintln(w, header.String())

	for y, row := range v.Rows {
		fmt.Fprintf(w, "%2d %s\n", y, row)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Score: %d  Moves: %d  Free: %d  State: %s\n", v.Score, v.Moves, v.EmptyCells, v.State)

	if len(v.Next) == 0 {
		return
	}
	parts := make([]string, len(v.Next))
	for i, b := range v.Next {
		if b.Color.Valid() {
			parts[i] = fmt.Sprintf("%s@%s", b.Color, b.At)
		} else {
			parts[i] = b.At.String()
		}
	}
	fmt.Fprintf(w, "Next:  %s\n", strings.Join(parts, "  "))
}
