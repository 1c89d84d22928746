package blocks

import "errors"

// Sentinel errors for the block-sequence engine.
var (
	// ErrPrecondition indicates compute_next_block was called with an
	// i_range that does not pick up where the engine's current i_range left
	// off.
	ErrPrecondition = errors.New("blocks: i_range.Lo must equal engine's current i_range.Hi")

	// ErrNoBlock indicates an operation was attempted before init.
	ErrNoBlock = errors.New("blocks: no blocks computed yet")

	// ErrReuseMismatch indicates reuse_next_block was called without an
	// existing block at the exact requested (i, j_range).
	ErrReuseMismatch = errors.New("blocks: no existing block matches the requested reuse i_range/j_range")

	// ErrEmptyRange describes a traceback request over an empty column
	// range. Trace does not return it: for such a request it returns no
	// steps and no error.
	ErrEmptyRange = errors.New("blocks: trace requires a non-empty i_range")
)
