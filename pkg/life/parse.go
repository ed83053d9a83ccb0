package life

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseGrid reads a plain-text grid: one row per line, '*' for live cells and
// '.' for dead ones. Trailing blank lines are ignored; every row must have the
// same width.
func ParseGrid(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("life: read grid: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}

	w, h := len(rows[0]), len(rows)
	if w == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrMalformedGrid)
	}
	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '*':
				cells = append(cells, Live)
			case '.':
				cells = append(cells, Dead)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedGrid, row[x], x, y)
			}
		}
	}
	return newGrid(w, h, cells), nil
}

// ParseGridString is ParseGrid over a string.
func ParseGridString(s string) (*Grid, error) {
	return ParseGrid(strings.NewReader(s))
}
