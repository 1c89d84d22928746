package viz

import "github.com/katalvlaran/gapa/internal/block"

// Sink receives the aligner's fixed event vocabulary. Implementations must
// not block or allocate heavily on the hot path; the aligner never inspects
// return values and never retries a call.
type Sink interface {
	// ExpandBlock reports that a block of the given size starting at pos was
	// (re)computed, with the DP value g and the heuristic-augmented bound f
	// observed at its top row.
	ExpandBlock(pos block.Pos, size int32, g, f block.Cost)

	// Extend reports a greedy diagonal extension reaching pos during
	// traceback, with the running DP value g and bound f at that point.
	Extend(pos block.Pos, g, f block.Cost)

	// HCall reports a heuristic evaluation h(pos).
	HCall(pos block.Pos)

	// FCall reports an f = g + h bound check at pos: inBounds is whether
	// f <= f_max held, fixed is whether pos fell within a fixed_j_range.
	FCall(pos block.Pos, inBounds, fixed bool)

	// JRangeEvent reports a newly computed row band, rounded out to whole
	// W-row chunks.
	JRangeEvent(start, end block.I)

	// FixedJRangeEvent reports a newly computed fixed sub-range.
	FixedJRangeEvent(start, end block.I)

	// NewLayer reports a new contour layer being created.
	NewLayer()

	// AddMeetingPoint reports a traceback/forward-search meeting point.
	AddMeetingPoint(pos block.Pos)

	// LastFrame reports the terminal event of an alignment run. cigar is
	// whatever edit-script representation the caller produced (typically
	// *gapa.Cigar), passed as interface{} to avoid a dependency from viz on
	// the root package; sinks that care about its shape type-assert it.
	LastFrame(cigar interface{})
}

// Noop discards every event. It is the default Sink used when the caller
// supplies none.
type Noop struct{}

var _ Sink = Noop{}

func (Noop) ExpandBlock(block.Pos, int32, block.Cost, block.Cost) {}
func (Noop) Extend(block.Pos, block.Cost, block.Cost)             {}
func (Noop) HCall(block.Pos)                                      {}
func (Noop) FCall(block.Pos, bool, bool)                          {}
func (Noop) JRangeEvent(block.I, block.I)                         {}
func (Noop) FixedJRangeEvent(block.I, block.I)                    {}
func (Noop) NewLayer()                                            {}
func (Noop) AddMeetingPoint(block.Pos)                            {}
func (Noop) LastFrame(interface{})                                {}
