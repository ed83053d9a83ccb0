package life

import "fmt"

// Interval is a half-open range [Start, End) of linear cell indices.
type Interval struct {
	Start int
	End   int
}

// Len returns the number of cells in the interval.
func (iv Interval) Len() int { return iv.End - iv.Start }

// Partition splits [0, total) into contiguous disjoint intervals, one per
// worker. The worker count is clamped to total so no interval is empty. Every
// interval holds total/workers cells except the last, which also takes the
// remainder.
func Partition(total, workers int) ([]Interval, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d cells", ErrInvalidSize, total)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}
	n := min(workers, total)
	base := total / n
	out := make([]Interval, n)
	for i := range out {
		out[i] = Interval{Start: i * base, End: (i + 1) * base}
	}
	out[n-1].End = total
	return out, nil
}
