// Package viz defines the optional visualisation collaborator the aligner
// reports its internal events to: block expansions, greedy extensions,
// heuristic/f-bound queries, band and fixed-range updates, contour layer
// creation, meeting points, and the final frame. A Sink must never block the
// aligner; the default Noop implementation discards every event.
package viz
