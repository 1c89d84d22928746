package heuristic

import (
	"math"

	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/internal/contour"
	"github.com/katalvlaran/gapa/internal/seed"
)

// sinkPos is the synthetic target every chain ultimately resolves to, in
// transformed coordinates. It is never itself transformed: it stands for
// "infinitely far along both axes" regardless of the coordinate system.
var sinkPos = block.Pos{I: math.MaxInt32, J: math.MaxInt32}

// transform maps an (i,j) position into the coordinate system contours are
// built and queried over. identityTransform is the literal DP coordinate;
// gapCostTransform folds the diagonal offset out of J, so dominance in the
// transformed space corresponds to the remaining gap-adjusted distance
// instead of raw Euclidean position — grounded on
// pa-heuristic/src/heuristic/chained_seed.rs's two coordinate systems (see
// spec §2, C6: "owns the coordinate transform (identity or gap-cost)").
type transform func(block.Pos) block.Pos

func identityTransform(p block.Pos) block.Pos { return p }

func gapCostTransform(p block.Pos) block.Pos { return block.Pos{I: p.I, J: p.J - p.I} }

// CSH is a chained-seed heuristic instance over one query/reference pair.
type CSH struct {
	target    block.Pos
	matches   *seed.Matches
	arrows    map[block.Pos][]contour.Arrow
	byEnd     map[block.Pos][]arrowRef // arrows indexed by End, for prune-on-reach
	contours  *contour.HintContours
	maxArrow  int
	transform transform
}

// arrowRef locates one arrow within the arrows map for removal.
type arrowRef struct {
	start block.Pos
	index int
}

// New builds a CSH instance from a's and b's seed matches. When useGapCost is
// true, arrow endpoints and H query points are folded through
// gapCostTransform before the contour layers are built or consulted,
// tightening their dominance relation; identityTransform is used otherwise.
// The target stays untransformed, since the gap fallback is measured in DP
// coordinates. Either way h stays an admissible lower bound (see DESIGN.md).
func New(target block.Pos, matches *seed.Matches, useGapCost bool) *CSH {
	xf := identityTransform
	if useGapCost {
		xf = gapCostTransform
	}

	arrows := make(map[block.Pos][]contour.Arrow)
	maxArrow := 1
	for _, m := range matches.Matches {
		if m.Status != seed.Active {
			continue
		}
		score := int(m.SeedPotential) - int(m.Cost)
		if score < 0 {
			score = 0
		}
		start := xf(m.Start)
		arrows[start] = append(arrows[start], contour.Arrow{
			Start: start,
			End:   xf(m.End),
			Score: uint8(score),
		})
		length := int(m.End.I-m.Start.I) + int(m.Cost)
		if length > maxArrow {
			maxArrow = length
		}
	}

	c := &CSH{
		target:    target,
		matches:   matches,
		arrows:    arrows,
		maxArrow:  maxArrow,
		transform: xf,
	}
	c.contours = contour.New(arrows, sinkPos, maxArrow)
	c.indexByEnd()
	return c
}

func (c *CSH) indexByEnd() {
	c.byEnd = make(map[block.Pos][]arrowRef)
	for start, list := range c.arrows {
		for i, a := range list {
			c.byEnd[a.End] = append(c.byEnd[a.End], arrowRef{start: start, index: i})
		}
	}
}

// potential returns the remaining seed potential from column i to |a|.
func (c *CSH) potential(i block.I) block.I {
	if int(i) >= len(c.matches.Potential) {
		return 0
	}
	return c.matches.Potential[i]
}

// gapLowerBound returns |di - dj|, the gap-cost lower bound from the
// untransformed DP position p to the target: any alignment must close
// exactly this much excess length on one axis relative to the other, so it
// never overestimates the remaining edit distance. This is the fallback used
// whenever no contour layer reaches p (score == 0); returning the Chebyshev
// distance max(di,dj) there instead would overestimate whenever the two
// remaining suffixes are close to the same length (the common case, where
// only the gap cost — not the full suffix length — is owed), breaking
// admissibility.
func (c *CSH) gapLowerBound(p block.Pos) block.I {
	di := c.target.I - p.I
	dj := c.target.J - p.J
	if di < 0 {
		di = -di
	}
	if dj < 0 {
		dj = -dj
	}
	gap := di - dj
	if gap < 0 {
		gap = -gap
	}
	return gap
}

// H returns the admissible lower bound on the remaining edit distance from p.
func (c *CSH) H(p block.Pos) block.Cost {
	tp := c.transform(p)
	s := c.contours.Score(tp)
	if s == 0 {
		return block.Cost(c.gapLowerBound(p))
	}
	phi := c.potential(p.I)
	if block.I(s) >= phi {
		return 0
	}
	return block.Cost(phi - block.I(s))
}

// HWithHint is H using a previously observed contour.Hint, returning a fresh
// hint for the next call.
func (c *CSH) HWithHint(p block.Pos, hint contour.Hint) (block.Cost, contour.Hint) {
	tp := c.transform(p)
	s, newHint := c.contours.ScoreWithHint(tp, hint)
	if s == 0 {
		return block.Cost(c.gapLowerBound(p)), newHint
	}
	phi := c.potential(p.I)
	if block.I(s) >= phi {
		return 0, newHint
	}
	return block.Cost(phi - block.I(s)), newHint
}

// Prune is called whenever the search proves position p will never lie on an
// optimal path, e.g. because the DP frontier has passed it. If p is the end
// of one or more seed matches, every arrow ending at p is drained from its
// start's arrow list, and the affected starts are re-homed in the contour via
// PruneWithHint. Re-homing a start can itself lower that start's chain score;
// when it does, anything chaining into that start as an intermediate hop (its
// own entry in byEnd) needs re-homing too, so the work queue cascades rather
// than stopping after one hop.
func (c *CSH) Prune(p block.Pos) {
	queue := []block.Pos{c.transform(p)}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		refs := c.byEnd[cur]
		if len(refs) == 0 {
			continue
		}
		delete(c.byEnd, cur)

		touched := make(map[block.Pos]bool, len(refs))
		for _, ref := range refs {
			touched[ref.start] = true
		}
		for start := range touched {
			kept := c.arrows[start][:0]
			for _, a := range c.arrows[start] {
				if a.End != cur {
					kept = append(kept, a)
				}
			}
			if len(kept) == 0 {
				delete(c.arrows, start)
			} else {
				c.arrows[start] = kept
			}
			changed, _ := c.contours.PruneWithHint(start, contour.Hint{}, c.arrows[start])
			if changed {
				queue = append(queue, start)
			}
		}
	}
}
