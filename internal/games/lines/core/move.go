package core

// MoveStatus tells whether a move was applied.
type MoveStatus uint8

const (
	MoveRejected MoveStatus = iota
	MoveAccepted
)

// String returns the string representation of a move status.
func (s MoveStatus) String() string {
	if s == MoveAccepted {
		return "accepted"
	}
	return "rejected"
}

// MarshalText implements encoding.TextMarshaler.
func (s MoveStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RejectReason explains why a move was not applied.
type RejectReason string

const (
	RejectNone           RejectReason = ""
	RejectOutOfRange     RejectReason = "out_of_range"
	RejectEmptySource    RejectReason = "empty_source"
	RejectOccupiedTarget RejectReason = "occupied_target"
	RejectNoPath         RejectReason = "no_path"
)

// MoveResult is the outcome of MoveBall. A rejected move is a normal
// result, not an error: the board is left untouched.
type MoveResult struct {
	Status MoveStatus   `json:"status"`
	Reason RejectReason `json:"reason,omitempty"`
	Line   LineResult   `json:"line"` // Run evaluated at the destination (accepted moves only)
}

// Accepted reports whether the move was applied.
func (r MoveResult) Accepted() bool {
	return r.Status == MoveAccepted
}

// Score returns the points earned by the move, zero when rejected.
func (r MoveResult) Score() int {
	return r.Line.Score
}

func rejected(reason RejectReason) MoveResult {
	return MoveResult{Status: MoveRejected, Reason: reason}
}

// MoveBall moves the ball at from to the empty cell to if a path exists,
// then scores the destination and commits the delta to the running score.
func (b *Board) MoveBall(from, to Coord) MoveResult {
	if !b.InBounds(from) || !b.InBounds(to) {
		return rejected(RejectOutOfRange)
	}
	src := b.cells[b.index(from)]
	if !src.Filled {
		return rejected(RejectEmptySource)
	}
	if b.cells[b.index(to)].Filled {
		return rejected(RejectOccupiedTarget)
	}
	if !b.PathExists(from, to) {
		return rejected(RejectNoPath)
	}

	// Both coordinates are in bounds; Set cannot fail here.
	_ = b.Set(to, src)
	_ = b.Set(from, Empty())

	line := b.Evaluate(to)
	b.score = addScore(b.score, line.Score)
	return MoveResult{Status: MoveAccepted, Line: line}
}
