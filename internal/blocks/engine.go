package blocks

import (
	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/internal/dna"
	"github.com/katalvlaran/gapa/viz"
)

// Engine holds the growing sequence of stored Blocks along the query axis
// and the kernel/profile needed to (re)compute them.
type Engine struct {
	profile *dna.Profile
	kernel  dna.Kernel

	// TraceMode requests that every column in a pass be retained (dense
	// mode), needed so a later traceback can walk column by column. Sparse
	// stores only block boundaries (every block_width columns).
	// IncrementalDoubling is stored for the caller; the engine itself does
	// not read it: SetLastBlockFixedJRange records fixed_j_range/j_h either
	// way, and whether a pass calls ReuseNextBlock is decided by the driver.
	TraceMode           bool
	Sparse              bool
	IncrementalDoubling bool

	blocks       []*block.Block
	lastBlockIdx int
	iRange       block.IRange
}

// NewEngine constructs an Engine over the given match profile.
func NewEngine(profile *dna.Profile, kernel dna.Kernel, trace, sparse, incrementalDoubling bool) *Engine {
	return &Engine{
		profile:             profile,
		kernel:              kernel,
		TraceMode:           trace,
		Sparse:              sparse,
		IncrementalDoubling: incrementalDoubling,
		iRange:              block.IRange{Lo: -1, Hi: -1},
	}
}

// Init sets up blocks[0] for column i=0 and resets i_range to [-1, 0). If
// blocks[0] already exists from an earlier pass, the requested j_range is
// unioned with its prior range rather than discarding it: the band only
// grows across passes.
func (e *Engine) Init(initialJRange block.JRange) error {
	rounded := initialJRange.RoundOut()
	if len(e.blocks) == 0 {
		e.blocks = []*block.Block{block.FirstCol(rounded)}
	} else {
		union := e.blocks[0].JRange.Union(rounded)
		if union != e.blocks[0].JRange {
			e.blocks[0] = block.FirstCol(union)
		}
	}
	e.lastBlockIdx = 0
	e.iRange = block.IRange{Lo: -1, Hi: 0}
	return nil
}

// LastBlock returns the most recently computed block.
func (e *Engine) LastBlock() (*block.Block, error) {
	if len(e.blocks) == 0 {
		return nil, ErrNoBlock
	}
	return e.blocks[e.lastBlockIdx], nil
}

// LastI returns the column index of the last computed block.
func (e *Engine) LastI() (block.I, error) {
	if len(e.blocks) == 0 {
		return 0, ErrNoBlock
	}
	return e.iRange.Hi, nil
}

// NextBlockJRange returns the j_range of the block immediately after
// last_block_idx from a previous pass, if one exists; otherwise an empty
// JRange.
func (e *Engine) NextBlockJRange() block.JRange {
	next := e.lastBlockIdx + 1
	if next >= len(e.blocks) {
		return block.JRange{}
	}
	return e.blocks[next].JRange
}

// SetLastBlockFixedJRange monotonically unions fixed into the last block's
// FixedJRange, rounded inward. JH is advanced to the new fixed range's upper
// bound: per the specification, "new_j_h := prev_fixed.1" grows monotonically
// alongside fixed_j_range, marking the row up to which a later, larger-f_max
// pass over this same block can resume instead of re-verifying from scratch
// (see fixedJRangeFor in the root package, which reads it back via
// FixedJRange).
func (e *Engine) SetLastBlockFixedJRange(fixed block.JRange) error {
	b, err := e.LastBlock()
	if err != nil {
		return err
	}
	rounded := fixed.RoundIn()
	if b.FixedJRange == nil {
		f := rounded
		b.FixedJRange = &f
	} else {
		union := b.FixedJRange.Union(rounded)
		b.FixedJRange = &union
	}
	jh := b.FixedJRange.Hi
	b.JH = &jh
	return nil
}

// PopLastBlock shrinks last_block_idx by one; i_range.Hi becomes the
// previous block's column index. The popped block's storage is kept (not
// truncated) so a later ReuseNextBlock can still find it as the next block.
func (e *Engine) PopLastBlock() error {
	if e.lastBlockIdx == 0 {
		return ErrNoBlock
	}
	e.lastBlockIdx--
	e.iRange.Hi = e.blocks[e.lastBlockIdx].Col
	return nil
}

// ReuseNextBlock advances last_block_idx and i_range.Hi without
// recomputation. It requires an existing block at the exact requested
// j_range immediately after last_block_idx.
func (e *Engine) ReuseNextBlock(iRange block.IRange, jRange block.JRange) error {
	if iRange.Lo != e.iRange.Hi {
		return ErrPrecondition
	}
	next := e.lastBlockIdx + 1
	if next >= len(e.blocks) {
		return ErrReuseMismatch
	}
	rounded := jRange.RoundOut()
	if e.blocks[next].JRange != rounded {
		return ErrReuseMismatch
	}
	e.lastBlockIdx = next
	e.iRange = block.IRange{Lo: e.iRange.Hi, Hi: iRange.Hi}
	return nil
}

// prevWordAt returns cur's vertical-delta word covering the W rows starting
// at absLo, or the identity (+1) boundary word if cur is nil or does not
// cover that chunk. Used both to seed a freshly grown block from its
// predecessor and to extend a block's band into rows the predecessor never
// stored.
func prevWordAt(cur *block.Block, absLo block.I) dna.VWord {
	if cur == nil {
		return dna.One()
	}
	if absLo < cur.JRange.Lo || absLo+block.I(dna.W) > cur.JRange.Hi {
		return dna.One()
	}
	idx := int(absLo-cur.Offset) / dna.W
	return cur.V[idx]
}

// advanceColumns recomputes every column from iRange.Lo+1 through iRange.Hi
// over the rounded row range, chaining each column's output as the next
// column's input. When keepAll is true it returns one Block per column
// (dense/traceback use); otherwise only the final column's Block.
func (e *Engine) advanceColumns(iRange block.IRange, rounded block.JRange, seed *block.Block, keepAll bool) []*block.Block {
	baseChunk := int(rounded.Lo) / dna.W
	n := rounded.Chunks()
	cur := seed
	var out []*block.Block
	for i := iRange.Lo + 1; i <= iRange.Hi; i++ {
		next := make([]dna.VWord, n)
		// Column i computes D[i][*] from D[i-1][*] by comparing against
		// query character a[i-1], not a[i]: row i's column is the one that
		// has consumed i query characters so far.
		row := i - 1
		source := cur
		prevAt := func(c int) dna.VWord {
			absLo := rounded.Lo + block.I(c*dna.W)
			return prevWordAt(source, absLo)
		}
		eqAt := func(c int) uint64 { return e.profile.EqWord(int(row), baseChunk+c) }
		// The top row's horizontal delta is +1 (TopVal grows by one per
		// column), so that is the carry entering the topmost chunk.
		delta, _ := e.kernel.ColumnChunks(eqAt, prevAt, baseChunk, n, 1, next)

		nb := &block.Block{
			Col:    i,
			JRange: rounded,
			Offset: rounded.Lo,
			V:      next,
			TopVal: cur.TopVal + 1,
			BotVal: block.Cost(int64(cur.BotVal) + int64(delta)),
		}
		if keepAll {
			out = append(out, nb)
		}
		cur = nb
	}
	if !keepAll {
		out = []*block.Block{cur}
	}
	return out
}

// ComputeNextBlock computes the block(s) covering iRange, growing jRange to
// also include any already-existing next block's range. Dense trace mode
// (TraceMode && !Sparse) delegates to FillWithBlocks, storing one Block per
// column; otherwise only the final column's Block is retained, stored at
// last_block_idx+1 (replacing any block there and dropping every block after
// it, or appended when none exists).
func (e *Engine) ComputeNextBlock(iRange block.IRange, jRange block.JRange, sink viz.Sink) error {
	if iRange.Lo != e.iRange.Hi {
		return ErrPrecondition
	}
	if e.TraceMode && !e.Sparse {
		return e.FillWithBlocks(iRange, jRange, sink)
	}

	prev, err := e.LastBlock()
	if err != nil {
		return err
	}
	rounded := jRange.RoundOut()
	next := e.lastBlockIdx + 1
	if next < len(e.blocks) {
		rounded = rounded.Union(e.blocks[next].JRange)
	}

	built := e.advanceColumns(iRange, rounded, prev, false)
	nb := built[0]

	if next < len(e.blocks) {
		e.blocks[next] = nb
		e.blocks = e.blocks[:next+1]
	} else {
		e.blocks = append(e.blocks, nb)
	}
	e.lastBlockIdx = next
	e.iRange = block.IRange{Lo: e.iRange.Hi, Hi: iRange.Hi}

	if sink != nil {
		sink.ExpandBlock(block.Pos{I: iRange.Hi, J: rounded.Lo}, int32(rounded.Len()), nb.TopVal, nb.TopVal)
		sink.JRangeEvent(rounded.Lo, rounded.Hi)
	}
	return nil
}

// FillWithBlocks is the dense variant used by traceback: it emits one Block
// per column in iRange, each retaining its own vertical-delta vector.
func (e *Engine) FillWithBlocks(iRange block.IRange, jRange block.JRange, sink viz.Sink) error {
	if iRange.Lo != e.iRange.Hi {
		return ErrPrecondition
	}
	prev, err := e.LastBlock()
	if err != nil {
		return err
	}
	rounded := jRange.RoundOut()
	next := e.lastBlockIdx + 1
	if next < len(e.blocks) {
		rounded = rounded.Union(e.blocks[next].JRange)
	}

	built := e.advanceColumns(iRange, rounded, prev, true)
	if next+len(built) <= len(e.blocks) {
		copy(e.blocks[next:], built)
		e.blocks = e.blocks[:next+len(built)]
	} else {
		e.blocks = append(e.blocks[:next], built...)
	}
	e.lastBlockIdx = next + len(built) - 1
	e.iRange = block.IRange{Lo: e.iRange.Hi, Hi: iRange.Hi}

	if sink != nil {
		sink.JRangeEvent(rounded.Lo, rounded.Hi)
		for k, b := range built {
			sink.ExpandBlock(block.Pos{I: iRange.Lo + 1 + block.I(k), J: rounded.Lo}, int32(rounded.Len()), b.TopVal, b.TopVal)
		}
	}
	return nil
}

// BlockAt returns the stored block whose column equals i, if any. Used by
// traceback to walk the stored chain; cheap because dense mode keeps blocks
// in column order so a reverse linear scan from the end finds recent columns
// quickly, and sparse mode only ever stores a handful of blocks.
func (e *Engine) BlockAt(i block.I) (*block.Block, bool) {
	for k := len(e.blocks) - 1; k >= 0; k-- {
		if e.blocks[k].Col == i {
			return e.blocks[k], true
		}
	}
	return nil, false
}

// Len returns the number of stored blocks.
func (e *Engine) Len() int { return len(e.blocks) }
