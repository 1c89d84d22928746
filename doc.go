// Package gapa computes unit-cost global edit distance and alignment
// between two DNA sequences, using a chained-seed admissible heuristic to
// band a bit-parallel block DP engine inside an exponential search over the
// distance bound.
//
// The work is organized under several subpackages:
//
//	internal/dna/       — 2-bit sequence encoding, match-mask profiles, the
//	                       Myers bit-parallel column kernel
//	internal/block/      — the Block type: one stored DP column plus its
//	                       row-range and fixed-range bookkeeping
//	internal/blocks/     — the engine chaining Blocks column by column, and
//	                       the DP-based traceback that recovers a cigar
//	internal/seed/       — tiling a query into k-length seeds and finding
//	                       their (possibly 1-error) occurrences in a reference
//	internal/contour/    — the layered dominance structure (HintContours)
//	                       seed chains are scored against
//	internal/heuristic/  — CSH, the admissible h() built on top of seed
//	                       matches and contours
//	viz/                 — the Sink interface a caller can implement to
//	                       observe the search as it runs
//
// Align ties these together: a first, sparse pass finds the distance by
// growing the search bound until the heuristic-guided band reaches the
// target; a second, dense pass reruns the same heuristic-guided banding in
// trace mode and walks the resulting block chain backward into a Cigar,
// cross-checked against the first pass's distance.
//
//	dist, cigar, stats, err := gapa.Align(query, reference, gapa.DefaultParams(), nil)
package gapa
