package gapa

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gapa/internal/blocks"
)

// CigarOp identifies one edit-script operation using samtools CIGAR letters.
type CigarOp byte

const (
	CigarMatch  CigarOp = 'M' // aligned column, match or substitution
	CigarIns    CigarOp = 'I' // query symbol with no reference counterpart
	CigarDel    CigarOp = 'D' // reference symbol with no query counterpart
)

// CigarElem is one run of a Cigar: Cnt consecutive CigarOp operations.
type CigarElem struct {
	Op  CigarOp
	Cnt int32
}

// Cigar is a forward, run-length-encoded edit script transforming the query
// into the reference. Consecutive elements always have distinct Op (two
// adjacent runs of the same op would simply be one longer run), and every
// Cnt is at least 1.
type Cigar []CigarElem

// String renders the cigar in samtools text form, e.g. "3M1I2M1D4M".
func (c Cigar) String() string {
	var sb strings.Builder
	for _, e := range c {
		fmt.Fprintf(&sb, "%d%c", e.Cnt, e.Op)
	}
	return sb.String()
}

// QueryLen returns the total number of query symbols the cigar consumes.
func (c Cigar) QueryLen() int32 {
	var n int32
	for _, e := range c {
		if e.Op == CigarMatch || e.Op == CigarIns {
			n += e.Cnt
		}
	}
	return n
}

// RefLen returns the total number of reference symbols the cigar consumes.
func (c Cigar) RefLen() int32 {
	var n int32
	for _, e := range c {
		if e.Op == CigarMatch || e.Op == CigarDel {
			n += e.Cnt
		}
	}
	return n
}

// cigarFromSteps translates the blocks engine's internal Match/Sub/Ins/Del
// run sequence into the public Cigar vocabulary: Match and Sub both collapse
// to CigarMatch (an aligned column, whether or not the symbols agree),
// matching samtools's 'M' semantics. Adjacent runs differing only by
// Match/Sub therefore merge into a single CigarMatch run.
func cigarFromSteps(steps []blocks.Step) Cigar {
	if len(steps) == 0 {
		return nil
	}
	out := make(Cigar, 0, len(steps))
	for _, s := range steps {
		op := cigarOpOf(s.Op)
		if n := len(out); n > 0 && out[n-1].Op == op {
			out[n-1].Cnt += s.Len
			continue
		}
		out = append(out, CigarElem{Op: op, Cnt: s.Len})
	}
	return out
}

func cigarOpOf(op blocks.Op) CigarOp {
	switch op {
	case blocks.Ins:
		return CigarIns
	case blocks.Del:
		return CigarDel
	default:
		return CigarMatch
	}
}

// costOfSteps returns the unit-cost edit distance a cigar implies against the raw
// blocks.Step run it was built from: every Sub, Ins, or Del step contributes
// its length to the cost, Match steps contribute nothing. Used to cross-check
// the dense traceback's cigar against the sparse pass's reported distance.
func costOfSteps(steps []blocks.Step) uint32 {
	var cost uint32
	for _, s := range steps {
		if s.Op != blocks.Match {
			cost += uint32(s.Len)
		}
	}
	return cost
}
