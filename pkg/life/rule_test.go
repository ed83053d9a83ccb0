package life

import "testing"

func full(w, h int) *Grid {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Live
	}
	return newGrid(w, h, cells)
}

func TestNeighborCountDeadFringe(t *testing.T) {
	g := full(4, 3)
	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 3}, {3, 0, 3}, {0, 2, 3}, {3, 2, 3},
		{1, 0, 5}, {0, 1, 5}, {3, 1, 5}, {2, 2, 5},
		{1, 1, 8}, {2, 1, 8},
	}
	for _, c := range cases {
		if got := NeighborCount(g, c.x, c.y); got != c.want {
			t.Fatalf("NeighborCount(%d,%d)=%d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestNeighborCountSingleCell(t *testing.T) {
	g := newGrid(1, 1, []Cell{Live})
	if got := NeighborCount(g, 0, 0); got != 0 {
		t.Fatalf("a cell is not its own neighbor, got %d", got)
	}
}

func TestNeighborCountExcludesCenter(t *testing.T) {
	g := newGrid(3, 3, []Cell{
		Dead, Dead, Dead,
		Dead, Live, Dead,
		Dead, Dead, Dead,
	})
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := 1
			if x == 1 && y == 1 {
				want = 0
			}
			if got := NeighborCount(g, x, y); got != want {
				t.Fatalf("NeighborCount(%d,%d)=%d, want %d", x, y, got, want)
			}
		}
	}
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantLive := Dead
		if n == 2 || n == 3 {
			wantLive = Live
		}
		if got := NextState(Live, n); got != wantLive {
			t.Fatalf("live cell with %d neighbors -> %d, want %d", n, got, wantLive)
		}
		wantDead := Dead
		if n == 3 {
			wantDead = Live
		}
		if got := NextState(Dead, n); got != wantDead {
			t.Fatalf("dead cell with %d neighbors -> %d, want %d", n, got, wantDead)
		}
	}
}

func TestStepIntervalWritesOnlyItsSlice(t *testing.T) {
	g := full(3, 3)
	dst := make([]Cell, 3)
	stepInterval(g, dst, Interval{Start: 3, End: 6})
	// Middle row of a full 3x3: edges have 5 neighbors, center has 8.
	want := []Cell{Dead, Dead, Dead}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]=%d, want %d", i, dst[i], want[i])
		}
	}

	dst = make([]Cell, 3)
	stepInterval(g, dst, Interval{Start: 0, End: 3})
	want = []Cell{Live, Dead, Live}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("top row dst[%d]=%d, want %d", i, dst[i], want[i])
		}
	}
}
