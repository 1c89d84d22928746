// Package blocks implements the block-sequence engine: the ordered list of
// Block columns along the query axis, grown and re-grown by the driver's
// exponential-search passes, plus traceback over the finished sequence.
//
// Every recomputation re-derives a block's vertical-delta vector from
// scratch over its (possibly widened) row range rather than patching only
// the newly added rows in place. The upstream reference keeps a resumable
// horizontal-delta scratch (h, j_h) to avoid repeating that work; this
// package still records the j_h bookkeeping on Block for interface parity,
// but does not exploit it to skip computation — its own debug builds assert
// that the incremental path and a full recompute produce byte-identical
// output, so the two are defined to agree. See DESIGN.md for the tradeoff.
package blocks
