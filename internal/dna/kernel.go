package dna

import "golang.org/x/sys/cpu"

// Variant selects which kernel implementation advances a column's chunks.
// Selected once when a Kernel is constructed, never per call, matching
// thesyncim/gopus's init-time dispatch on golang.org/x/sys/cpu feature bits
// (celt/kissfft32_opt_amd64.go) rather than re-testing capabilities on every
// invocation.
type Variant int

const (
	// Scalar advances one W-row chunk at a time.
	Scalar Variant = iota
	// Wide advances chunks in groups of unrollGroup, trading a larger
	// per-call working set for fewer function-call boundaries. This is the
	// portable stand-in for the spec's "SIMD: L=2 lanes of H=4 64-bit rows"
	// kernel: real CPU SIMD would require per-arch assembly, which is out of
	// scope for a module that is never built by this exercise (see
	// DESIGN.md); the dispatch mechanism and the cpu-feature gating are
	// nonetheless grounded on gopus's pattern.
	Wide
)

// unrollGroup is the number of W-row chunks advanced per Wide iteration: 2
// lanes of 4 words, per spec §4.1.
const unrollGroup = 8

// Kernel advances DP columns for a fixed query/reference pair using the
// chosen Variant.
type Kernel struct {
	variant Variant
}

// NewKernel selects a kernel variant. When simdRequested is true and the host
// CPU exposes a wide integer path (AVX2 on amd64, NEON on arm64), the Wide
// variant is used; otherwise Scalar. The probe mirrors cpu.X86.HasAVX2 /
// cpu.ARM64.HasASIMD checks from gopus, even though both variants here are
// pure Go: the point is to keep variant selection a one-time, construction-
// time decision rather than a per-call branch.
func NewKernel(simdRequested bool) Kernel {
	if !simdRequested {
		return Kernel{variant: Scalar}
	}
	if hasWideIntPath() {
		return Kernel{variant: Wide}
	}
	return Kernel{variant: Scalar}
}

func hasWideIntPath() bool {
	if cpu.X86.HasAVX2 {
		return true
	}
	if cpu.ARM64.HasASIMD {
		return true
	}
	return false
}

// Variant reports the selected kernel variant.
func (k Kernel) Variant() Variant { return k.variant }

// AdvanceWord runs one step of the bit-parallel unit-cost recurrence
// (Myers '99 generalised to multi-word columns, a.k.a. Hyyrö's block
// extension) for a single W-row chunk of one column.
//
// eq is the match mask for this chunk (bit k set iff a[i] == b[chunk*W+k]).
// pv, mv are the vertical delta word carried in from the previous column at
// this chunk (block[i-1].v[chunk]). carryIn is the inter-chunk carry from
// the chunk above, within the same column (-1, 0, or +1); for the topmost
// chunk of a column it is the horizontal delta of the row above the chunk.
//
// It returns the new vertical delta word for this column (fed to the next
// column as pv, mv), the horizontal delta word ph, mh (bit k set iff the DP
// value at this chunk's row k increased/decreased by 1 from the previous
// column; ColumnChunks does not use them), and carryOut, the horizontal
// delta of the chunk's bottom row, which is the inter-chunk carry to pass to
// the chunk below.
func AdvanceWord(eq, pv, mv uint64, carryIn int8) (pvOut, mvOut, ph, mh uint64, carryOut int8) {
	if carryIn < 0 {
		eq |= 1
	}
	xv := eq | mv
	xh := (((eq & pv) + pv) ^ pv) | eq
	ph = mv | ^(xh | pv)
	mh = pv & xh

	carryOut = 0
	if ph&(1<<63) != 0 {
		carryOut++
	}
	if mh&(1<<63) != 0 {
		carryOut--
	}
	ph <<= 1
	mh <<= 1
	if carryIn > 0 {
		ph |= 1
	} else if carryIn < 0 {
		mh |= 1
	}

	pvOut = mh | ^(xv | ph)
	mvOut = ph & xv
	return
}

// ColumnChunks advances numChunks W-row chunks of one column, starting at
// chunk baseChunk, using k's selected variant. eqAt(chunk) must return the
// match mask for that chunk. prev supplies the incoming vertical delta word
// for each chunk (block[i-1].v), carryIn is the scalar carry entering the
// topmost chunk: the horizontal delta of the row above it (+1 on the global
// top boundary, which is what the blocks engine passes).
//
// It writes the new vertical delta words into out and returns the
// horizontal delta of the last chunk's bottom row (the "bottom_delta" the
// blocks engine adds to bot_val) along with the carry leaving the last
// chunk; the two are the same value.
func (k Kernel) ColumnChunks(eqAt func(chunk int) uint64, prev func(chunk int) VWord, baseChunk, numChunks int, carryIn int8, out []VWord) (bottomDelta int, carryOut int8) {
	switch k.variant {
	case Wide:
		return columnChunksWide(eqAt, prev, baseChunk, numChunks, carryIn, out)
	default:
		return columnChunksScalar(eqAt, prev, baseChunk, numChunks, carryIn, out)
	}
}

func columnChunksScalar(eqAt func(chunk int) uint64, prev func(chunk int) VWord, baseChunk, numChunks int, carryIn int8, out []VWord) (int, int8) {
	carry := carryIn
	for c := 0; c < numChunks; c++ {
		pv := prev(baseChunk + c)
		eq := eqAt(baseChunk + c)
		pvOut, mvOut, _, _, newCarry := AdvanceWord(eq, pv.P, pv.M, carry)
		out[c] = VWord{P: pvOut, M: mvOut}
		carry = newCarry
	}
	return int(carry), carry
}

// columnChunksWide is functionally identical to the scalar path but groups
// work into unrollGroup-sized batches, matching the spec's "SIMD" variant
// shape (processes L*H rows per invocation, loop-unrolled) without requiring
// assembly.
func columnChunksWide(eqAt func(chunk int) uint64, prev func(chunk int) VWord, baseChunk, numChunks int, carryIn int8, out []VWord) (int, int8) {
	carry := carryIn
	c := 0
	for ; c+unrollGroup <= numChunks; c += unrollGroup {
		for g := 0; g < unrollGroup; g++ {
			pv := prev(baseChunk + c + g)
			eq := eqAt(baseChunk + c + g)
			pvOut, mvOut, _, _, newCarry := AdvanceWord(eq, pv.P, pv.M, carry)
			out[c+g] = VWord{P: pvOut, M: mvOut}
			carry = newCarry
		}
	}
	for ; c < numChunks; c++ {
		pv := prev(baseChunk + c)
		eq := eqAt(baseChunk + c)
		pvOut, mvOut, _, _, newCarry := AdvanceWord(eq, pv.P, pv.M, carry)
		out[c] = VWord{P: pvOut, M: mvOut}
		carry = newCarry
	}
	return int(carry), carry
}
