// Package seed finds short exact and near-exact matches ("seeds") between
// the query and reference, used by internal/heuristic to build an
// admissible A*-style lower bound on remaining edit distance.
//
// Seeds tile the query into disjoint k-length windows. Each seed is looked
// up in the reference through a qgram index; when r=2 (one error tolerated)
// the seed's substitution, deletion, and insertion neighbourhoods are looked
// up as well, each contributing matches at cost 1. Variable-length seed
// tiling (shrinking or growing a window until its reference match count
// falls in a target range) is not implemented: fixed-length tiling keeps
// every seed's potential well-defined and the heuristic admissible, at the
// cost of the tuning the reference implementation gets from adaptive
// lengths. See DESIGN.md.
package seed
