package core

import "strings"

// Rows returns one string per board row, top first: color characters,
// '.' for empty cells.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	line := make([]byte, b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			cell := b.cells[y*b.size+x]
			if cell.Filled {
				line[x] = cell.Color.Char()
			} else {
				line[x] = '.'
			}
		}
		rows[y] = string(line)
	}
	return rows
}

// String returns the board as newline-terminated rows. Intended for logs,
// tests and plain-text CLI output.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.size + 1) * b.size)
	for _, row := range b.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
