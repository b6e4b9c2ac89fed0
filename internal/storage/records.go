package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/color-lines/internal/games/lines"
)

// MaxRecords is how many entries a records list keeps.
const MaxRecords = 10

const recordSep = " - "

// ErrMalformedRecord is returned when a records line cannot be parsed.
var ErrMalformedRecord = errors.New("storage: malformed record")

// Record is one line of a records list.
type Record struct {
	Name  string
	Score int
}

// String formats the record as "<name> - <score>".
func (r Record) String() string {
	return r.Name + recordSep + strconv.Itoa(r.Score)
}

// FormatRecords renders records one per line, without a trailing newline.
func FormatRecords(records []Record) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// ParseRecords parses newline-separated records, skipping blank lines.
// The score follows the last separator, so names may contain it.
func ParseRecords(text string) ([]Record, error) {
	var records []Record
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		i := strings.LastIndex(line, recordSep)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
		}
		score, err := strconv.Atoi(line[i+len(recordSep):])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
		}
		records = append(records, Record{Name: line[:i], Score: score})
	}
	return records, nil
}

// InsertRecord adds r, orders by score descending (earlier entries win
// ties) and keeps at most MaxRecords.
func InsertRecord(records []Record, r Record) []Record {
	out := make([]Record, 0, len(records)+1)
	out = append(out, records...)
	out = append(out, r)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > MaxRecords {
		out = out[:MaxRecords]
	}
	return out
}

// RecordsFromScores converts stored scores into a records list.
func RecordsFromScores(entries []ScoreEntry) []Record {
	var records []Record
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = "anonymous"
		}
		records = InsertRecord(records, Record{Name: name, Score: e.Score})
	}
	return records
}

// RecordGame stores the final score of a finished game once. Games that
// are still being played or already recorded are ignored, so a failed
// attempt can simply be repeated.
func RecordGame(ctx context.Context, st Storage, g *lines.Game, name string) (bool, error) {
	if !g.GameOver() || g.Recorded() {
		return false, nil
	}
	err := st.SaveScore(ctx, ScoreEntry{
		Variant: g.Variant().ID,
		Name:    name,
		GameID:  g.ID(),
		Score:   g.Score(),
	})
	if err != nil {
		return false, err
	}
	g.MarkRecorded()
	return true, nil
}
