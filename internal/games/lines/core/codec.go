package core

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	headerSep = "|"
	entrySep  = ";"
	fieldSep  = ","
)

// Encode serializes the score and every cell in row-major order:
//
//	<score>|<x>,<y>,<c>;<x>,<y>,<c>;...
//
// where <c> is '0' for an empty cell or the color character.
func Encode(b *Board) string {
	var sb strings.Builder
	sb.Grow(len(b.cells)*6 + 8)
	sb.WriteString(strconv.Itoa(b.score))
	sb.WriteString(headerSep)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if x != 0 || y != 0 {
				sb.WriteString(entrySep)
			}
			writeEntry(&sb, x, y, b.cells[y*b.size+x].Char())
		}
	}
	return sb.String()
}

func writeEntry(sb *strings.Builder, x, y int, ch byte) {
	sb.WriteString(strconv.Itoa(x))
	sb.WriteString(fieldSep)
	sb.WriteString(strconv.Itoa(y))
	sb.WriteString(fieldSep)
	sb.WriteByte(ch)
}

// Decode parses encoded state into a new board of the given size.
// Entries whose coordinates fall outside the board are skipped; any
// structural problem fails the whole decode with ErrMalformedData.
func Decode(text string, size int) (*Board, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	header, body, ok := strings.Cut(text, headerSep)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q separator", ErrMalformedData, headerSep)
	}
	if strings.Contains(body, headerSep) {
		return nil, fmt.Errorf("%w: repeated %q separator", ErrMalformedData, headerSep)
	}
	score, err := strconv.ParseUint(header, 10, strconv.IntSize-1)
	if err != nil {
		return nil, fmt.Errorf("%w: score %q", ErrMalformedData, header)
	}

	for _, entry := range strings.Split(body, entrySep) {
		c, cell, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		if !b.InBounds(c) {
			continue
		}
		_ = b.Set(c, cell)
	}
	b.score = int(score)
	return b, nil
}

func parseEntry(entry string) (Coord, Cell, error) {
	parts := strings.Split(entry, fieldSep)
	if len(parts) != 3 {
		return Coord{}, Cell{}, fmt.Errorf("%w: entry %q", ErrMalformedData, entry)
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return Coord{}, Cell{}, fmt.Errorf("%w: coordinates in entry %q", ErrMalformedData, entry)
	}
	if len(parts[2]) != 1 {
		return Coord{}, Cell{}, fmt.Errorf("%w: cell in entry %q", ErrMalformedData, entry)
	}
	cell, ok := CellFromChar(parts[2][0])
	if !ok {
		return Coord{}, Cell{}, fmt.Errorf("%w: color %q", ErrMalformedData, parts[2])
	}
	return C(x, y), cell, nil
}

// MarshalText implements encoding.TextMarshaler.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(Encode(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver's size
// is kept; on error the receiver is left unchanged.
func (b *Board) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text), b.size)
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

// EncodeBalls serializes pending balls using the same entry syntax as Encode,
// without a score header.
func EncodeBalls(balls []Ball) string {
	var sb strings.Builder
	for i, ball := range balls {
		if i > 0 {
			sb.WriteString(entrySep)
		}
		writeEntry(&sb, ball.At.X, ball.At.Y, ball.Color.Char())
	}
	return sb.String()
}

// DecodeBalls parses the output of EncodeBalls. Every entry must carry a
// palette color.
func DecodeBalls(text string) ([]Ball, error) {
	if text == "" {
		return nil, nil
	}
	entries := strings.Split(text, entrySep)
	balls := make([]Ball, 0, len(entries))
	for _, entry := range entries {
		c, cell, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		if !cell.Filled {
			return nil, fmt.Errorf("%w: empty ball in entry %q", ErrMalformedData, entry)
		}
		balls = append(balls, Ball{At: c, Color: cell.Color})
	}
	return balls, nil
}
