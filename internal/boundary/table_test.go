package boundary

import (
	"errors"
	"strings"
	"testing"

	"lifegrid/pkg/life"
)

func TestCreateNextDispose(t *testing.T) {
	tab := NewTable()
	h, err := tab.Create(5, 5, life.Blinker, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if h == 0 {
		t.Fatal("Create returned the null handle")
	}

	txt, err := tab.Next(h)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(txt, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("%d lines, want 5", len(lines))
	}
	if want := "░░██████░░"; lines[2] != want {
		t.Fatalf("middle row %q, want %q", lines[2], want)
	}

	e, err := tab.Lookup(h)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if e.Generation() != 1 {
		t.Fatalf("generation %d, want 1", e.Generation())
	}

	if err := tab.Dispose(h); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
	if err := tab.Dispose(h); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("double dispose: got %v", err)
	}
	if _, err := tab.Next(h); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("Next after dispose: got %v", err)
	}
	if err := tab.Dispose(0); err != nil {
		t.Fatalf("null dispose: %v", err)
	}
}

func TestCreateValidates(t *testing.T) {
	tab := NewTable()
	if _, err := tab.Create(-1, 4, life.Empty, 1); !errors.Is(err, life.ErrInvalidSize) {
		t.Fatalf("got %v, want ErrInvalidSize", err)
	}
	if tab.Len() != 0 {
		t.Fatal("failed create must not register a handle")
	}
}

func TestHandlesAreDistinct(t *testing.T) {
	tab := NewTable()
	a, err := tab.Create(3, 3, life.Empty, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := tab.Create(3, 3, life.Glider, 1)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("handles must be distinct")
	}
	if tab.Len() != 2 {
		t.Fatalf("%d handles, want 2", tab.Len())
	}
	if err := tab.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if tab.Len() != 0 {
		t.Fatal("Close must empty the table")
	}
}

func TestLedgerSingleRelease(t *testing.T) {
	l := NewLedger()
	l.Track(0x1000)
	l.Track(0x2000)
	if l.Outstanding() != 2 {
		t.Fatalf("outstanding %d", l.Outstanding())
	}
	if err := l.Release(0x1000); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := l.Release(0x1000); !errors.Is(err, ErrUnknownBuffer) {
		t.Fatalf("double release: got %v", err)
	}
	if err := l.Release(0); err != nil {
		t.Fatalf("null release: %v", err)
	}
	if l.Outstanding() != 1 {
		t.Fatalf("outstanding %d, want 1", l.Outstanding())
	}
}

func TestCloseDisposesEngines(t *testing.T) {
	tab := NewTable()
	h, err := tab.Create(4, 4, life.Empty, 2)
	if err != nil {
		t.Fatal(err)
	}
	e, err := tab.Lookup(h)
	if err != nil {
		t.Fatal(err)
	}
	if err := tab.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := e.Advance(); !errors.Is(err, life.ErrClosed) {
		t.Fatalf("engine still usable after Close: %v", err)
	}
	if _, err := tab.Lookup(h); !errors.Is(err, ErrUnknownHandle) {
		t.Fatalf("Lookup after Close: got %v", err)
	}
	if err := tab.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
