package life

import "errors"

var (
	// ErrInvalidSize reports a non-positive width or height, or a cell buffer
	// whose length does not match the dimensions.
	ErrInvalidSize = errors.New("life: invalid grid size")
	// ErrInvalidWorkers reports a non-positive worker count.
	ErrInvalidWorkers = errors.New("life: worker count must be positive")
	// ErrPatternTooSmall reports a grid too small to hold a fixed pattern.
	ErrPatternTooSmall = errors.New("life: grid too small for pattern")
	// ErrUnknownPattern reports a pattern name with no registered initializer.
	ErrUnknownPattern = errors.New("life: unknown pattern")
	// ErrMalformedGrid reports unreadable plain-text grid input.
	ErrMalformedGrid = errors.New("life: malformed grid")

	// ErrPoisoned is returned by every Advance after a work unit failed.
	ErrPoisoned = errors.New("life: engine poisoned by failed generation")
	// ErrBusy is returned when Advance or Reset is called while another
	// Advance or Reset is still running on the same engine.
	ErrBusy = errors.New("life: engine busy")
	// ErrClosed is returned when the engine is used after Close.
	ErrClosed = errors.New("life: engine closed")
)
