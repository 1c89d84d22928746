// Package heuristic implements CSH: a chained-seed admissible heuristic
// wrapping internal/seed's matches and internal/contour's layered dominance
// structure behind h(pos) and a pruning callback the driver invokes as the
// search consumes matches.
//
// New selects one of two coordinate transforms applied to every arrow
// endpoint and every H query point before the contour layers are consulted
// (the target and the gap fallback stay in DP coordinates): the identity
// transform, or a gap-cost transform that
// folds the diagonal offset out of the row coordinate. Either way h stays an
// admissible lower bound; the gap-cost transform simply makes the contour
// dominance relation — and therefore h — tighter in runs with a skewed
// insertion/deletion balance. See Params.UseGapCost.
package heuristic
