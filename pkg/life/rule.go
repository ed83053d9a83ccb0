package life

// mooreOffsets lists the eight neighbor offsets of the Moore neighborhood.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1},
	{-1, 1}, {-1, 0},
}

// NeighborCount returns the number of live cells among the eight neighbors of
// (x, y). Neighbors off the grid count as dead; there is no wraparound.
func NeighborCount(g *Grid, x, y int) int {
	n := 0
	for _, d := range mooreOffsets {
		n += int(g.At(x+d[0], y+d[1]))
	}
	return n
}

// NextState applies the B3/S23 rule: a live cell survives with two or three
// live neighbors, a dead cell becomes live with exactly three.
func NextState(c Cell, neighbors int) Cell {
	if neighbors == 3 || (c == Live && neighbors == 2) {
		return Live
	}
	return Dead
}

// stepInterval computes the next state of every cell in iv from src. dst is
// the exclusive slice of the next-generation buffer backing iv, so dst[0]
// corresponds to cell iv.Start. dst arrives zeroed; only live cells are
// written.
func stepInterval(src *Grid, dst []Cell, iv Interval) {
	w := src.w
	for i := iv.Start; i < iv.End; i++ {
		if NextState(src.cells[i], NeighborCount(src, i%w, i/w)) == Live {
			dst[i-iv.Start] = Live
		}
	}
}
