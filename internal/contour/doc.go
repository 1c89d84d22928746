// Package contour implements HintContours: a layered dominance structure
// over transformed seed-match start positions, used to answer "best chain
// score reachable from p" queries by probing a few layers around a recently
// observed Hint, and by a linear scan from the top layer down otherwise.
//
// Layer v holds every point whose best outgoing arrow chain totals exactly
// v. Pruning an arrow can only ever lower a point's layer (never raise it),
// which is what keeps the structure's score function an admissible
// heuristic lower bound; no separate consistency walk is run after a
// mutation.
package contour
