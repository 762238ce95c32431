// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "errors"

// Sentinel errors returned by the selector. Callers compare with errors.Is.
var (
	// ErrEmptyWindow is returned when CreateBackwardReferences is called on a
	// zero-length input window.
	ErrEmptyWindow = errors.New("brzopfli: empty input window")

	// ErrOutOfMemory is returned when the pooled allocator's sticky
	// out-of-memory flag has tripped. Once set it stays set for the
	// allocator's lifetime; a fresh Allocator must be used to retry.
	ErrOutOfMemory = errors.New("brzopfli: allocator out of memory")

	// ErrInvariantViolation is returned when a MatchFinder breaks one of the
	// contract guarantees the shortest-path relaxation depends on: a
	// candidate list not strictly ascending by length, a non-dictionary
	// candidate distance that decreases as length grows, a zero distance, or
	// a match that reads past the end of the window. It is also returned when
	// the backtrace meets a node whose command length does not fit. It is
	// never retried internally.
	ErrInvariantViolation = errors.New("brzopfli: match finder invariant violation")

	// ErrNoReach is returned if the shortest-path backtrace finds no
	// finite-cost node at all, not even the start-of-window node. An
	// unreached last position is normal (the trailing bytes become the
	// residual insert length) and does not produce this error.
	ErrNoReach = errors.New("brzopfli: shortest path did not reach end of window")

	// ErrInvalidQuality is returned when Options.Quality is outside [0, 11].
	ErrInvalidQuality = errors.New("brzopfli: quality out of range")

	// ErrInvalidWindowBits is returned when Options.LgWin is outside [10, 24].
	ErrInvalidWindowBits = errors.New("brzopfli: window bits out of range")
)
