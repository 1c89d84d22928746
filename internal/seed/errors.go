package seed

import "errors"

// Sentinel errors for seed finding.
var (
	// ErrBadK indicates a non-positive seed length.
	ErrBadK = errors.New("seed: k must be positive")

	// ErrBadR indicates an r value outside {1,2} (exact-only / one-error).
	ErrBadR = errors.New("seed: r must be 1 or 2")
)
