package life

import (
	"fmt"
	"strings"

	"lifegrid/pkg/core"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = 0
	Live Cell = 1
)

// Grid is an immutable snapshot of the board stored in row-major order: the
// cell at (x, y) lives at index y*width + x. Nothing mutates a Grid after it
// is built, so it can be shared freely between the engine, worker goroutines
// and renderers.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid builds a snapshot from a copy of cells.
func NewGrid(w, h int, cells []Cell) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrInvalidSize, len(cells), w, h)
	}
	buf := make([]Cell, len(cells))
	for i, c := range cells {
		if c != Dead && c != Live {
			return nil, fmt.Errorf("%w: cell state %d at index %d", ErrMalformedGrid, c, i)
		}
		buf[i] = c
	}
	return newGrid(w, h, buf), nil
}

// newGrid wraps cells without copying. The caller gives up ownership.
func newGrid(w, h int, cells []Cell) *Grid {
	return &Grid{w: w, h: h, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Len returns width*height.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Coord is the inverse of Index.
func (g *Grid) Coord(i int) (x, y int) { return i % g.w, i / g.w }

// In reports whether (x, y) lies on the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// At returns the state at (x, y). Coordinates off the grid read as Dead.
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Dead
	}
	return g.cells[y*g.w+x]
}

// Cells returns a copy of the cell states.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Bytes returns a copy of the cell states as 0/1 bytes.
func (g *Grid) Bytes() []uint8 {
	out := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		out[i] = uint8(c)
	}
	return out
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Live {
			n++
		}
	}
	return n
}

// Equal reports whether both snapshots have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid using '*' for live and '.' for dead cells, one row
// per line. ParseGrid reads the same format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.h)
	for i, c := range g.cells {
		if c == Live {
			b.WriteByte('*')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%g.w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
