package block

import (
	"fmt"

	"github.com/katalvlaran/gapa/internal/dna"
)

// Block is one stored DP column: a rounded-out row range, the packed
// vertical-delta vector covering it, the absolute costs at its top and
// bottom row, and the bookkeeping the blocks engine (internal/blocks) needs
// to resume incremental computation across driver passes.
type Block struct {
	// Col is the query-axis column index i this block was computed for.
	Col I

	// JRange is the rounded-out row interval this block's V covers.
	JRange JRange
	// Offset equals JRange.Lo; kept as a separate field so call sites that
	// only need the row offset don't have to reach through JRange.
	Offset I

	// V holds one dna.VWord per dna.W rows of JRange.
	V []dna.VWord

	// TopVal, BotVal are the absolute DP values at (i, JRange.Lo) and
	// (i, JRange.Hi).
	TopVal, BotVal Cost

	// FixedJRange is the rounded-in sub-range of JRange known to satisfy
	// f <= f_max for the pass that set it, or nil if unset. It only grows
	// while this Block value is kept; recomputing a column produces a new
	// Block whose FixedJRange starts out nil.
	FixedJRange *JRange

	// JH is the row marking how far horizontal-delta bookkeeping has been
	// carried for this block during incremental doubling, or nil if no
	// fixed range has been recorded for it; SetLastBlockFixedJRange sets it
	// to the upper bound of FixedJRange. It is a position
	// within JRange, not a per-row bitvector: per-row horizontal deltas are
	// produced and consumed transiently by the kernel and never stored.
	JH *I
}

// Index returns the absolute DP value at row j, which must lie in JRange or
// equal JRange.Hi (the bottom row, whose value is BotVal).
func (b *Block) Index(j I) (Cost, error) {
	if !b.JRange.Contains(j) && j != b.JRange.Hi {
		return 0, ErrOutOfRange
	}
	k := j - b.Offset
	return Cost(int64(b.TopVal) + int64(b.prefixSum(k))), nil
}

// GetDiff returns the single delta at row j (-1, 0, or +1), or false if j
// falls outside JRange.
func (b *Block) GetDiff(j I) (int8, bool) {
	if !b.JRange.Contains(j) {
		return 0, false
	}
	k := j - b.Offset
	chunk := int(k) / dna.W
	bit := uint(int(k) % dna.W)
	return b.V[chunk].At(bit), true
}

// prefixSum returns the signed sum of the first k deltas (0 <= k <= JRange.Len()).
func (b *Block) prefixSum(k I) int {
	sum := 0
	full := int(k) / dna.W
	rem := uint(int(k) % dna.W)
	for c := 0; c < full; c++ {
		sum += b.V[c].Sum()
	}
	if rem > 0 {
		sum += b.V[full].PrefixSum(rem)
	}
	return sum
}

// CheckTopBotVal is a debug assertion that BotVal - TopVal equals the signed
// sum of the deltas packed in V.
func (b *Block) CheckTopBotVal() error {
	sum := 0
	for _, w := range b.V {
		sum += w.Sum()
	}
	want := int64(b.TopVal) + int64(sum)
	if want != int64(b.BotVal) {
		return fmt.Errorf("%w: top=%d bot=%d delta_sum=%d", ErrInconsistent, b.TopVal, b.BotVal, sum)
	}
	return nil
}

// FirstCol builds the initial block for column i=0: every delta is +1 (the
// classical top/left boundary, deleting through b costs one per row).
func FirstCol(jr JRange) *Block {
	rounded := jr.RoundOut()
	n := rounded.Chunks()
	v := make([]dna.VWord, n)
	for c := range v {
		v[c] = dna.One()
	}
	return &Block{
		Col:    0,
		JRange: rounded,
		Offset: rounded.Lo,
		V:      v,
		TopVal: Cost(rounded.Lo),
		BotVal: Cost(rounded.Hi),
	}
}
