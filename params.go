package gapa

// Params configures one Align call: which engine features are enabled and
// the thresholds the exponential-search driver uses. The zero value is not
// valid; construct with DefaultParams and override selectively, mirroring
// lvlath/dtw's Options/DefaultOptions pattern.
type Params struct {
	// BlockWidth is the number of query columns the sparse engine batches
	// per stored block. Larger values trade traceback granularity (the
	// sparse pass never stores it) for fewer ComputeNextBlock calls.
	BlockWidth int32

	// Sparse stores only block boundaries during the cost-finding pass
	// instead of every column. Always true for the first (cost-only) pass;
	// the second (traceback) pass always runs dense regardless of this
	// field, since a cigar requires every column's Block.
	Sparse bool

	// SIMD requests the kernel's wide-chunk variant when the host CPU
	// supports it (see internal/dna.NewKernel). Falls back to the scalar
	// variant silently when unsupported.
	SIMD bool

	// IncrementalDoubling lets the engine remember fixed_j_range/j_h
	// bookkeeping across exponential-search passes so growing f_max does
	// not force every earlier column to be recomputed from column 0.
	IncrementalDoubling bool

	// MaxG is the initial exponential-search bound on the edit distance.
	// The search doubles this value each time a pass fails to reach the
	// target within it.
	MaxG uint32

	// XDrop is the diagonal-pruning distance of the diagonal-transition
	// traceback shortcut (see DTTrace). That shortcut is not built, so
	// Align does not read XDrop.
	XDrop int32

	// K is the seed (q-gram) length internal/seed tiles the query into.
	K int

	// MaxMatchCost is the seed error tolerance: 0 admits only exact
	// q-gram matches, 1 additionally admits one substitution, deletion, or
	// insertion per seed.
	MaxMatchCost uint8

	// PruningEnabled removes seed matches from the heuristic once the
	// search frontier has passed their end position, keeping h() cheap to
	// evaluate late in a long alignment.
	PruningEnabled bool

	// SkipPrune is the number of prunable points to let pass before
	// pruning. Align does not read it, so it has no effect.
	SkipPrune uint

	// UseGapCost selects the heuristic's coordinate transform: when true,
	// CSH folds the diagonal offset out of the row coordinate before
	// consulting the contour layers (see internal/heuristic.New), tightening
	// h() for alignments with a skewed insertion/deletion balance. When
	// false, the identity transform is used.
	UseGapCost bool

	// SparseH gates whether a block's fixed_j_range scan resumes from its
	// own previously-verified bound (the j_h frontier, see internal/block's
	// JH field) when f_max grows, instead of re-verifying the whole block's
	// j_range from scratch every pass.
	SparseH bool

	// DTTrace would enable a bounded greedy diagonal-transition shortcut
	// during traceback (see spec's dt_trace_block), falling back to the
	// dense DP parent lookup when it fails to land within XDrop of the
	// leading diagonal. Not implemented: the dense DP traceback already
	// produces an identical cigar by walking one cell at a time and
	// run-length-encoding consecutive matches, so this field currently has
	// no effect — see DESIGN.md.
	DTTrace bool
}

// DefaultParams returns the configuration used when a caller does not need
// to tune the search: sparse cost pass with incremental doubling, 1-error
// seeds, and pruning enabled.
func DefaultParams() Params {
	return Params{
		BlockWidth:          256,
		Sparse:              true,
		SIMD:                false,
		IncrementalDoubling: true,
		MaxG:                40,
		XDrop:               20,
		K:                   15,
		MaxMatchCost:        1,
		PruningEnabled:      true,
		SkipPrune:           0,
		UseGapCost:          true,
		SparseH:             true,
		DTTrace:             false,
	}
}

// Validate rejects parameter combinations the driver cannot act on.
func (p Params) Validate() error {
	if p.BlockWidth <= 0 {
		return ErrBadBlockWidth
	}
	if p.K <= 0 {
		return ErrBadK
	}
	if p.MaxMatchCost > 1 {
		return ErrBadMaxMatchCost
	}
	if int(p.MaxMatchCost) > p.K/3 {
		return ErrBadMaxMatchCost
	}
	return nil
}
