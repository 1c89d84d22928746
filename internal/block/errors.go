package block

import "errors"

// Sentinel errors for range and block bookkeeping.
var (
	// ErrOutOfRange indicates a row index fell outside a Block's j_range.
	ErrOutOfRange = errors.New("block: row outside j_range")

	// ErrInconsistent indicates a Block's top_val/bot_val disagree with the
	// signed sum of the deltas packed in v, i.e. check_top_bot_val failed.
	ErrInconsistent = errors.New("block: bot_val does not match top_val plus delta sum")
)
