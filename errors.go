package gapa

import "errors"

// Sentinel errors for parameter validation and alignment failures.
var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("gapa: input sequences must be non-empty")

	// ErrBadBlockWidth indicates a non-positive BlockWidth.
	ErrBadBlockWidth = errors.New("gapa: BlockWidth must be positive")

	// ErrBadK indicates a non-positive seed length K.
	ErrBadK = errors.New("gapa: K must be positive")

	// ErrBadMaxMatchCost indicates MaxMatchCost is outside {0,1}, or exceeds
	// K/3 (the point past which 1-error seed neighbourhoods stop being a
	// useful filter).
	ErrBadMaxMatchCost = errors.New("gapa: MaxMatchCost must be 0 or 1, and at most K/3")

	// ErrInconsistent indicates the release-mode final verification failed:
	// the dense traceback's DP value or the cigar's cost disagreed with the
	// heuristic-guided search's reported distance, or the traceback band
	// collapsed. It is also returned when the exponential search reaches its
	// f_max cap without reaching the target. The cigar is checked by cost
	// only, not by replaying it against a and b.
	// This is the release-mode surfacing of what the specification treats
	// as a programmer error in debug builds.
	ErrInconsistent = errors.New("gapa: internal consistency check failed, no cigar produced")
)
