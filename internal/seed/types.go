package seed

import "github.com/katalvlaran/gapa/internal/block"

// Status is a Match's lifecycle state under pruning.
type Status uint8

const (
	Active Status = iota
	Pruned
	PrePruned
	Filtered
)

// Seed is one disjoint k-length tile of the query.
type Seed struct {
	Start, End    block.I
	SeedPotential uint8 // max_match_cost + 1
}

// Match is one occurrence (exact or within the seed's error tolerance) of a
// seed's qgram (or one of its edit neighbours) in the reference.
type Match struct {
	Start, End    block.Pos
	Cost          uint8
	SeedPotential uint8
	Status        Status
}

// Matches is the full result of a Find call.
type Matches struct {
	Seeds   []Seed
	Matches []Match

	// StartOfSeed[i] is the start column of the seed covering column i, for
	// 0 <= i <= len(a). Columns not covered by any seed map to themselves.
	StartOfSeed []block.I

	// Potential[i] is the cumulative seed potential of every seed fully
	// contained in [i, len(a)).
	Potential []block.I
}
