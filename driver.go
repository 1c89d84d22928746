package gapa

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/internal/blocks"
	"github.com/katalvlaran/gapa/internal/dna"
	"github.com/katalvlaran/gapa/internal/heuristic"
	"github.com/katalvlaran/gapa/internal/seed"
	"github.com/katalvlaran/gapa/viz"
)

// Cost is an edit distance or partial DP value: always non-negative.
type Cost = uint32

// maxGCap bounds the exponential search: no unit-cost alignment of a and b
// can cost more than len(a)+len(b) (delete all of a, insert all of b), so
// doubling past that is never productive.
func maxGCap(lenA, lenB int) uint32 {
	return uint32(lenA + lenB)
}

// Align computes the unit-cost edit distance between query a and reference
// b and a Cigar realising it, using a chained-seed admissible heuristic
// (internal/heuristic, internal/seed, internal/contour) to band a bit-
// parallel block DP engine (internal/blocks) inside an exponential search
// over the distance bound.
//
// The search runs in two passes. The first grows f_max (doubling from
// params.MaxG) until a sparse, trace-free pass reaches (len(a), len(b))
// within the current bound, establishing dist. The second reruns the block
// engine in dense trace mode, banded exactly as the first pass was banded,
// and walks the resulting Block chain backward to build the cigar; its
// reported cost is cross-checked against dist before returning.
//
// sink may be nil, in which case viz.Noop is used.
//
// Stats is non-authoritative telemetry (see its doc comment); callers that
// only need the alignment itself can discard it.
func Align(a, b []byte, params Params, sink viz.Sink) (Cost, *Cigar, Stats, error) {
	stats := Stats{RunID: uuid.New().String()}

	if err := params.Validate(); err != nil {
		return 0, nil, stats, err
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, stats, ErrEmptySequence
	}
	if sink == nil {
		sink = viz.Noop{}
	}

	profile, err := dna.Build(a, b)
	if err != nil {
		return 0, nil, stats, fmt.Errorf("gapa: %w", err)
	}
	kernel := dna.NewKernel(params.SIMD)

	matches, err := seed.Find(profile.A, profile.B, params.K, int(params.MaxMatchCost)+1)
	if err != nil {
		return 0, nil, stats, fmt.Errorf("gapa: %w", err)
	}
	for _, m := range matches.Matches {
		switch m.Status {
		case seed.Active:
			stats.SeedMatches++
		case seed.Filtered:
			stats.FilteredMatches++
		}
	}

	lenA, lenB := block.I(len(a)), block.I(len(b))
	target := block.Pos{I: lenA, J: lenB}
	csh := heuristic.New(target, matches, params.UseGapCost)
	stats.HAtRootBefore = csh.H(block.Pos{I: 0, J: 0})

	capG := maxGCap(len(a), len(b))
	fMax := params.MaxG
	if fMax == 0 {
		fMax = 1
	}

	// eng is kept across exponential-search iterations rather than rebuilt:
	// Engine.Init unions each pass's requested j_range into blocks[0] instead
	// of discarding prior blocks, and ReuseNextBlock (wired inside sparsePass)
	// lets a later, wider-f_max pass skip recomputation for any batch whose
	// band did not grow relative to what an earlier pass already stored.
	eng := blocks.NewEngine(profile, kernel, false, true, params.IncrementalDoubling)

	var dist Cost
	var found bool
	for {
		d, ok, perr := sparsePass(eng, csh, params, fMax, lenA, lenB, sink, &stats.Prunes)
		if perr != nil {
			return 0, nil, stats, perr
		}
		if ok {
			dist, found = d, true
			break
		}
		if fMax >= capG {
			break
		}
		fMax *= 2
		if fMax > capG {
			fMax = capG
		}
	}
	if !found {
		return 0, nil, stats, fmt.Errorf("gapa: %w", ErrInconsistent)
	}
	stats.HAtRootAfter = csh.H(block.Pos{I: 0, J: 0})

	cigar, err := densePass(csh, params, fMax, profile, kernel, lenA, lenB, dist, sink)
	if err != nil {
		return 0, nil, stats, err
	}

	sink.LastFrame(cigar)
	return dist, cigar, stats, nil
}

// sparsePass runs one exponential-search iteration at the given f_max over
// eng, a sparse, trace-free engine that persists across iterations (see
// Align): it advances params.BlockWidth columns at a time, with the band at
// each step computed from csh's admissible bound. Before recomputing a
// batch, it checks whether eng already holds a block immediately after the
// current one whose j_range covers the freshly computed band — left over
// from an earlier, narrower-f_max iteration that reached at least this far —
// and if so reuses it via Engine.ReuseNextBlock instead of redoing the
// kernel work. It reports the final (i,j)=(lenA,lenB) distance and whether
// the pass reached it without the band collapsing to empty.
func sparsePass(eng *blocks.Engine, csh *heuristic.CSH, params Params, fMax uint32, lenA, lenB block.I, sink viz.Sink, prunes *int) (Cost, bool, error) {
	j0 := jRangeFor(block.IRange{Lo: -1, Hi: 0}, fMax, nil, block.JRange{}, csh, lenB)
	if err := eng.Init(j0); err != nil {
		return 0, false, fmt.Errorf("gapa: %w", err)
	}
	applyFixed(eng, fMax, csh, 0, params.SparseH)

	width := block.I(params.BlockWidth)
	if width <= 0 {
		width = 1
	}

	for {
		last, err := eng.LastI()
		if err != nil {
			return 0, false, fmt.Errorf("gapa: %w", err)
		}
		if last >= lenA {
			break
		}
		hi := last + width
		if hi > lenA {
			hi = lenA
		}
		iRange := block.IRange{Lo: last, Hi: hi}

		prev, err := eng.LastBlock()
		if err != nil {
			return 0, false, fmt.Errorf("gapa: %w", err)
		}
		existing := eng.NextBlockJRange()
		jr := jRangeFor(iRange, fMax, prev, existing, csh, lenB)
		if jr.Empty() {
			return 0, false, nil
		}
		sink.FCall(block.Pos{I: hi, J: jr.Hi}, true, false)

		reused := false
		if params.IncrementalDoubling && !existing.Empty() && jr.RoundOut().Subset(existing) {
			if rerr := eng.ReuseNextBlock(iRange, existing); rerr == nil {
				reused = true
			}
		}
		if !reused {
			if err := eng.ComputeNextBlock(iRange, jr, sink); err != nil {
				return 0, false, fmt.Errorf("gapa: %w", err)
			}
		}
		applyFixed(eng, fMax, csh, hi, params.SparseH)

		if params.PruningEnabled {
			csh.Prune(block.Pos{I: hi, J: jr.Hi})
			*prunes++
		}
	}

	final, err := eng.LastBlock()
	if err != nil {
		return 0, false, fmt.Errorf("gapa: %w", err)
	}
	if !final.JRange.Contains(lenB) && lenB != final.JRange.Hi {
		return 0, false, nil
	}
	g, err := final.Index(lenB)
	if err != nil {
		return 0, false, nil
	}
	if g > fMax {
		return 0, false, nil
	}
	return g, true, nil
}

// densePass reruns the block engine in dense trace mode, banding it exactly
// as sparsePass bands the cost-finding pass — one params.BlockWidth batch at
// a time, bounded by the same admissible f = g + h <= fMax the exponential
// search already proved reaches (lenA, lenB) — rather than scanning the full
// [0, lenB) row range on every column. csh is the same (already pruned)
// heuristic instance the successful sparse iteration used, and fMax is that
// iteration's bound, so the band this produces for any given column is never
// wider than what the sparse pass already explored. It then walks the
// resulting Block chain backward into a Cigar. dist is the distance the
// sparse pass reported; densePass verifies the dense bottom-right DP value
// agrees before trusting the traceback, surfacing ErrInconsistent otherwise.
func densePass(csh *heuristic.CSH, params Params, fMax uint32, profile *dna.Profile, kernel dna.Kernel, lenA, lenB block.I, dist Cost, sink viz.Sink) (*Cigar, error) {
	eng := blocks.NewEngine(profile, kernel, true, false, false)

	j0 := jRangeFor(block.IRange{Lo: -1, Hi: 0}, fMax, nil, block.JRange{}, csh, lenB)
	if err := eng.Init(j0); err != nil {
		return nil, fmt.Errorf("gapa: %w", err)
	}
	applyFixed(eng, fMax, csh, 0, params.SparseH)

	width := block.I(params.BlockWidth)
	if width <= 0 {
		width = 1
	}

	for {
		last, err := eng.LastI()
		if err != nil {
			return nil, fmt.Errorf("gapa: %w", err)
		}
		if last >= lenA {
			break
		}
		hi := last + width
		if hi > lenA {
			hi = lenA
		}
		iRange := block.IRange{Lo: last, Hi: hi}

		prev, err := eng.LastBlock()
		if err != nil {
			return nil, fmt.Errorf("gapa: %w", err)
		}
		jr := jRangeFor(iRange, fMax, prev, eng.NextBlockJRange(), csh, lenB)
		if jr.Empty() {
			return nil, fmt.Errorf("gapa: %w: band collapsed during traceback pass", ErrInconsistent)
		}
		sink.FCall(block.Pos{I: hi, J: jr.Hi}, true, false)

		if err := eng.ComputeNextBlock(iRange, jr, sink); err != nil {
			return nil, fmt.Errorf("gapa: %w", err)
		}
		applyFixed(eng, fMax, csh, hi, params.SparseH)

		if params.PruningEnabled {
			csh.Prune(block.Pos{I: hi, J: jr.Hi})
		}
	}

	last, err := eng.LastBlock()
	if err != nil {
		return nil, fmt.Errorf("gapa: %w", err)
	}
	g, err := last.Index(lenB)
	if err != nil {
		return nil, fmt.Errorf("gapa: %w", err)
	}
	if g != dist {
		return nil, fmt.Errorf("gapa: %w: sparse pass reported %d, dense pass found %d", ErrInconsistent, dist, g)
	}

	steps, err := eng.Trace(block.Pos{I: 0, J: 0}, block.Pos{I: lenA, J: lenB}, sink)
	if err != nil {
		return nil, fmt.Errorf("gapa: %w", err)
	}
	if costOfSteps(steps) != dist {
		return nil, fmt.Errorf("gapa: %w: cigar cost does not match reported distance", ErrInconsistent)
	}

	cigar := cigarFromSteps(steps)
	return &cigar, nil
}

// applyFixed computes and records the fixed_j_range of the engine's current
// last block: the sub-range where f = g + h provably holds within f_max,
// independent of how that block's j_range might later grow. sparseH threads
// through to fixedJRangeFor, gating whether the scan resumes from the block's existing FixedJRange bound instead of rescanning
// from the block's full edges.
func applyFixed(eng *blocks.Engine, fMax uint32, csh *heuristic.CSH, i block.I, sparseH bool) {
	b, err := eng.LastBlock()
	if err != nil {
		return
	}
	fixed := fixedJRangeFor(b, fMax, csh, i, sparseH)
	if fixed == nil {
		return
	}
	_ = eng.SetLastBlockFixedJRange(*fixed)
}

// jRangeFor computes the admissible band for the batch of columns in
// iRange, following the specification's f(v) = g_u + |(v.j-u.j)-(v.i-u.i)|
// + h(v) formula: u is the end of the best previously-known fixed range (or
// the predecessor block's leftmost row, bootstrapping from row 0 when no
// fixed range exists yet), and the band is extended row by row from u's
// diagonal projection until f exceeds f_max. The band's lower bound is
// taken directly from the fixed range rather than re-derived, matching the
// specification's stated return value.
func jRangeFor(iRange block.IRange, fMax uint32, prev *block.Block, oldRange block.JRange, csh *heuristic.CSH, lenB block.I) block.JRange {
	fixed := block.JRange{Lo: -1, Hi: -1}
	if prev != nil && prev.FixedJRange != nil {
		fixed = *prev.FixedJRange
	}
	merged := fixed.Union(oldRange)

	lo := merged.Lo
	if lo < 0 {
		lo = 0
	}

	u := block.Pos{I: iRange.Lo, J: merged.Hi}
	var gu Cost
	if prev == nil {
		u = block.Pos{I: 0, J: 0}
		gu = 0
	} else {
		if merged.Empty() {
			u.J = prev.JRange.Lo
		}
		if u.J < prev.JRange.Lo {
			u.J = prev.JRange.Lo
		}
		if u.J > prev.JRange.Hi {
			u.J = prev.JRange.Hi
		}
		v, err := prev.Index(u.J)
		if err != nil {
			v = Cost(u.J)
		}
		gu = v
	}

	step := iRange.Hi - iRange.Lo
	j1 := u.J + step
	if j1 < 0 {
		j1 = 0
	}
	for j1 <= lenB {
		v := block.Pos{I: iRange.Hi, J: j1}
		diag := (v.J - u.J) - (v.I - u.I)
		if diag < 0 {
			diag = -diag
		}
		h := csh.H(v)
		f := uint64(gu) + uint64(diag) + uint64(h)
		if f > uint64(fMax) {
			break
		}
		j1++
	}
	hi := j1
	if hi > lenB {
		hi = lenB
	}
	if hi < lo {
		hi = lo
	}
	return block.JRange{Lo: lo, Hi: hi}
}

// fixedJRangeFor narrows b.JRange inward from both edges until the first and
// last rows satisfy g(j) + h(i,j) <= f_max; rows strictly between those two
// are not checked. Returns nil if no such sub-range exists (the whole block
// is already uncertain).
//
// When sparseH is set and b already carries a FixedJRange from an earlier,
// smaller f_max, that range is known fixed without rechecking: f_max only
// grows across exponential-search passes, so a row proven fixed at a
// smaller bound stays fixed at any larger one. The scan then only needs to
// probe the increment between the old fixed boundary and the block's edges,
// rather than rescanning the whole block inward from scratch.
func fixedJRangeFor(b *block.Block, fMax uint32, csh *heuristic.CSH, i block.I, sparseH bool) *block.JRange {
	lo, hi := b.JRange.Lo, b.JRange.Hi

	if sparseH && b.FixedJRange != nil && !b.FixedJRange.Empty() {
		curLo := b.FixedJRange.Lo
		for curLo > lo {
			g, err := b.Index(curLo - 1)
			if err != nil || uint64(g)+uint64(csh.H(block.Pos{I: i, J: curLo - 1})) > uint64(fMax) {
				break
			}
			curLo--
		}
		curHi := b.FixedJRange.Hi
		for curHi < hi {
			g, err := b.Index(curHi)
			if err != nil || uint64(g)+uint64(csh.H(block.Pos{I: i, J: curHi})) > uint64(fMax) {
				break
			}
			curHi++
		}
		if curHi <= curLo {
			return nil
		}
		return &block.JRange{Lo: curLo, Hi: curHi}
	}

	for lo < hi {
		g, err := b.Index(lo)
		if err != nil {
			return nil
		}
		if uint64(g)+uint64(csh.H(block.Pos{I: i, J: lo})) <= uint64(fMax) {
			break
		}
		lo++
	}
	for hi > lo {
		g, err := b.Index(hi)
		if err != nil {
			hi--
			continue
		}
		if uint64(g)+uint64(csh.H(block.Pos{I: i, J: hi})) <= uint64(fMax) {
			break
		}
		hi--
	}
	if hi <= lo {
		return nil
	}
	return &block.JRange{Lo: lo, Hi: hi}
}
