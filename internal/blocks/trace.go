package blocks

import (
	"fmt"

	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/viz"
)

// Trace builds an edit script walking backward from to to from, both
// absolute (i,j) positions into the already-filled dense block chain
// (FillWithBlocks must have covered every column in [from.I, to.I]).
//
// Each step picks the cheapest single-cell parent move consistent with the
// stored DP values: a diagonal match (free), a diagonal substitution, an
// insertion (consumes a query symbol), or a deletion (consumes a reference
// symbol). This is the DP-based parent lookup the driver falls back to
// whenever a faster greedy diagonal-transition walk is unavailable; since it
// only ever consults already-computed Block values, it always succeeds given
// a consistent block chain.
func (e *Engine) Trace(from, to block.Pos, sink viz.Sink) ([]Step, error) {
	if to.I < from.I || to.J < from.J {
		return nil, fmt.Errorf("blocks: trace requires to >= from, got from=%+v to=%+v", from, to)
	}

	var reversed []Op
	pos := to
	for pos != from {
		switch {
		case pos.I == from.I:
			reversed = append(reversed, Del)
			pos.J--
		case pos.J == from.J:
			reversed = append(reversed, Ins)
			pos.I--
		default:
			op, next, err := e.parent(pos)
			if err != nil {
				return nil, err
			}
			reversed = append(reversed, op)
			pos = next
		}
		if sink != nil {
			sink.Extend(pos, 0, 0)
		}
	}

	return rle(reversed), nil
}

// parent finds the cheapest single-cell predecessor of pos, preferring a
// free diagonal match, then a diagonal substitution, then an insertion, then
// a deletion.
func (e *Engine) parent(pos block.Pos) (Op, block.Pos, error) {
	cur, ok := e.BlockAt(pos.I)
	if !ok {
		return 0, block.Pos{}, fmt.Errorf("blocks: trace: no block stored for column %d", pos.I)
	}
	prev, ok := e.BlockAt(pos.I - 1)
	if !ok {
		return 0, block.Pos{}, fmt.Errorf("blocks: trace: no block stored for column %d", pos.I-1)
	}

	g, err := cur.Index(pos.J)
	if err != nil {
		return 0, block.Pos{}, fmt.Errorf("blocks: trace: %w", err)
	}

	if diag, err := prev.Index(pos.J - 1); err == nil {
		if e.profile.IsMatch(int(pos.I-1), int(pos.J-1)) && diag == g {
			return Match, block.Pos{I: pos.I - 1, J: pos.J - 1}, nil
		}
		if diag+1 == g {
			return Sub, block.Pos{I: pos.I - 1, J: pos.J - 1}, nil
		}
	}
	if up, err := prev.Index(pos.J); err == nil && up+1 == g {
		return Ins, block.Pos{I: pos.I - 1, J: pos.J}, nil
	}
	if left, err := cur.Index(pos.J - 1); err == nil && left+1 == g {
		return Del, block.Pos{I: pos.I, J: pos.J - 1}, nil
	}
	return 0, block.Pos{}, fmt.Errorf("blocks: trace: no consistent parent move at %+v (g=%d)", pos, g)
}

// rle run-length-encodes a reverse-order op sequence into forward-order
// Steps.
func rle(reversed []Op) []Step {
	if len(reversed) == 0 {
		return nil
	}
	steps := make([]Step, 0, len(reversed))
	op := reversed[len(reversed)-1]
	n := int32(1)
	for k := len(reversed) - 2; k >= 0; k-- {
		if reversed[k] == op {
			n++
			continue
		}
		steps = append(steps, Step{Op: op, Len: n})
		op = reversed[k]
		n = 1
	}
	steps = append(steps, Step{Op: op, Len: n})
	return steps
}
