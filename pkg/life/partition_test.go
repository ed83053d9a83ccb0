package life

import (
	"errors"
	"testing"
)

func TestPartitionCoversRange(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for workers := 1; workers <= 20; workers++ {
			ivs, err := Partition(total, workers)
			if err != nil {
				t.Fatalf("Partition(%d,%d): %v", total, workers, err)
			}
			if want := min(total, workers); len(ivs) != want {
				t.Fatalf("Partition(%d,%d) gave %d intervals, want %d", total, workers, len(ivs), want)
			}
			next := 0
			for i, iv := range ivs {
				if iv.Start != next {
					t.Fatalf("Partition(%d,%d)[%d] starts at %d, want %d", total, workers, i, iv.Start, next)
				}
				if iv.Len() <= 0 {
					t.Fatalf("Partition(%d,%d)[%d] is empty", total, workers, i)
				}
				next = iv.End
			}
			if next != total {
				t.Fatalf("Partition(%d,%d) ends at %d, want %d", total, workers, next, total)
			}
		}
	}
}

func TestPartitionRemainderOnLast(t *testing.T) {
	ivs, err := Partition(10, 3)
	if err != nil {
		t.Fatalf("Partition: %v", err)
	}
	want := []Interval{{0, 3}, {3, 6}, {6, 10}}
	for i := range want {
		if ivs[i] != want[i] {
			t.Fatalf("interval %d = %+v, want %+v", i, ivs[i], want[i])
		}
	}
}

func TestPartitionRejectsInvalid(t *testing.T) {
	if _, err := Partition(0, 2); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("got %v, want ErrInvalidSize", err)
	}
	if _, err := Partition(9, 0); !errors.Is(err, ErrInvalidWorkers) {
		t.Fatalf("got %v, want ErrInvalidWorkers", err)
	}
}
