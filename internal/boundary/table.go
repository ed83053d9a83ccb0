// Package boundary backs the C-callable library: engines live in a table
// keyed by opaque handles, and every buffer handed to a foreign caller is
// recorded until the caller releases it exactly once.
package boundary

import (
	"errors"
	"fmt"
	"sync"

	"lifegrid/internal/render"
	"lifegrid/pkg/life"
)

// Handle identifies an engine across the boundary. The zero Handle is null.
type Handle uint64

var (
	// ErrUnknownHandle reports a handle that was never issued or was already
	// disposed.
	ErrUnknownHandle = errors.New("boundary: unknown handle")
	// ErrUnknownBuffer reports a release of a buffer that is not outstanding.
	ErrUnknownBuffer = errors.New("boundary: unknown buffer")
)

// Table maps handles to engines.
type Table struct {
	mu      sync.Mutex
	next    Handle
	engines map[Handle]*life.Engine
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{engines: map[Handle]*life.Engine{}}
}

// Create builds an engine and returns its handle.
func (t *Table) Create(w, h int, p life.Pattern, workers int) (Handle, error) {
	e, err := life.New(w, h, p, workers)
	if err != nil {
		return 0, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.engines[t.next] = e
	return t.next, nil
}

// Lookup returns the engine behind h.
func (t *Table) Lookup(h Handle) (*life.Engine, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.engines[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return e, nil
}

// Next advances the engine behind h by one generation and returns the new
// generation rendered as text.
func (t *Table) Next(h Handle) (string, error) {
	e, err := t.Lookup(h)
	if err != nil {
		return "", err
	}
	if err := e.Advance(); err != nil {
		return "", err
	}
	return render.Text(e.Snapshot()), nil
}

// Text renders the current generation of the engine behind h.
func (t *Table) Text(h Handle) (string, error) {
	e, err := t.Lookup(h)
	if err != nil {
		return "", err
	}
	return render.Text(e.Snapshot()), nil
}

// Dispose closes the engine behind h and forgets the handle. Disposing the
// null handle is a no-op; disposing an unknown or already disposed handle
// reports ErrUnknownHandle.
func (t *Table) Dispose(h Handle) error {
	if h == 0 {
		return nil
	}
	t.mu.Lock()
	e, ok := t.engines[h]
	delete(t.engines, h)
	t.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return e.Close()
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.engines)
}

// Close disposes every engine still in the table.
func (t *Table) Close() error {
	t.mu.Lock()
	engines := t.engines
	t.engines = map[Handle]*life.Engine{}
	t.mu.Unlock()
	var errs []error
	for _, e := range engines {
		errs = append(errs, e.Close())
	}
	return errors.Join(errs...)
}

// Ledger records buffers owned by foreign callers, keyed by address.
type Ledger struct {
	mu   sync.Mutex
	bufs map[uintptr]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{bufs: map[uintptr]struct{}{}}
}

// Track records the buffer at addr as handed out.
func (l *Ledger) Track(addr uintptr) {
	l.mu.Lock()
	l.bufs[addr] = struct{}{}
	l.mu.Unlock()
}

// Release forgets addr. Releasing address 0 is a no-op; releasing an address
// that is not outstanding reports ErrUnknownBuffer, so the caller must not
// free it again.
func (l *Ledger) Release(addr uintptr) error {
	if addr == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.bufs[addr]; !ok {
		return fmt.Errorf("%w: %#x", ErrUnknownBuffer, addr)
	}
	delete(l.bufs, addr)
	return nil
}

// Outstanding returns the number of buffers not yet released.
func (l *Ledger) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bufs)
}
