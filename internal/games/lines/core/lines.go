package core

import "math"

const (
	// MinRun is the shortest run that clears and scores.
	MinRun = 5

	// BaseLineScore is awarded for a run of exactly MinRun balls.
	BaseLineScore = 10
)

// LineResult describes the longest same-color run through a cell.
type LineResult struct {
	Axis   Axis    `json:"axis"`
	Cells  []Coord `json:"cells,omitempty"` // Run members, starting with the evaluated cell
	Length int     `json:"length"`
	Score  int     `json:"score"` // Zero unless Length >= MinRun
}

// Scored reports whether the run was long enough to clear.
func (r LineResult) Scored() bool {
	return r.Length >= MinRun
}

// LineScore returns the points for a run of the given length:
// 10 for five, doubling for every extra ball, capped at math.MaxInt.
func LineScore(length int) int {
	if length < MinRun {
		return 0
	}
	shift := uint(length - MinRun)
	if BaseLineScore > math.MaxInt>>shift {
		return math.MaxInt
	}
	return BaseLineScore << shift
}

// addScore adds a non-negative delta, saturating at math.MaxInt.
func addScore(total, delta int) int {
	if delta > math.MaxInt-total {
		return math.MaxInt
	}
	return total + delta
}

// Inspect finds the longest run through c without changing the board.
// Axes are checked horizontal, vertical, ↘, ↗; on equal lengths the
// earlier axis is kept. An empty or off-board cell yields a zero result.
func (b *Board) Inspect(c Coord) LineResult {
	cell := b.Get(c)
	if !cell.Filled {
		return LineResult{}
	}

	var best LineResult
	for _, axis := range axes {
		run := b.runAlong(c, cell.Color, axis)
		if len(run) > best.Length {
			best = LineResult{Axis: axis, Cells: run, Length: len(run)}
		}
	}
	best.Score = LineScore(best.Length)
	return best
}

// Evaluate finds the longest run through c and, if it is at least MinRun
// long, clears every ball in it. Only that single run is cleared even when
// another qualifying run crosses c. The score is reported, not committed.
func (b *Board) Evaluate(c Coord) LineResult {
	res := b.Inspect(c)
	if !res.Scored() {
		return res
	}
	for _, rc := range res.Cells {
		// Run cells are in bounds by construction.
		_ = b.Set(rc, Empty())
	}
	return res
}

// runAlong collects c plus every consecutive same-color cell along axis,
// first in the positive direction and then in the negative one.
func (b *Board) runAlong(c Coord, color Color, axis Axis) []Coord {
	dx, dy := axis.Delta()
	run := []Coord{c}
	for _, sign := range [2]int{1, -1} {
		for i := 1; ; i++ {
			next := c.Add(sign*i*dx, sign*i*dy)
			cell := b.Get(next)
			if !b.InBounds(next) || !cell.Filled || cell.Color != color {
				break
			}
			run = append(run, next)
		}
	}
	return run
}
