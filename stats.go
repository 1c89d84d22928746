package gapa

// Stats reports non-authoritative telemetry about one Align call: match
// counts and heuristic tightness at the root, useful for tuning Params but
// never consulted by Align itself to decide correctness.
type Stats struct {
	// RunID is a fresh random identifier for this call. It is reported here
	// only; viz.Sink events do not carry it.
	RunID string

	// SeedMatches is the number of active seed matches found before the
	// search consumed any of them.
	SeedMatches int

	// FilteredMatches is the number of returned matches whose status is
	// seed.Filtered. internal/seed drops duplicate (start,end) pairs
	// outright rather than marking them, so this is 0 for matches it builds.
	FilteredMatches int

	// Prunes counts how many times the sparse search passes told the
	// heuristic a position would never lie on an optimal path; prunes made
	// during the traceback pass are not counted.
	Prunes int

	// HAtRootBefore and HAtRootAfter are h((0,0)) evaluated once before any
	// pruning and once more after the winning pass's last prune, showing
	// how much the heuristic's bound at the origin degraded as matches
	// were consumed.
	HAtRootBefore, HAtRootAfter Cost
}
