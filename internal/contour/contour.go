package contour

import (
	"sort"

	"github.com/katalvlaran/gapa/internal/block"
)

// HintContours is a layered dominance structure over arrow start positions.
// Layer v holds every point whose best outgoing arrow chain sums to exactly
// v; the synthetic sink lives in layer 0.
type HintContours struct {
	sink   block.Pos
	maxLen int

	layers        [][]block.Pos
	layerOf       map[block.Pos]int
	layersRemoved int // top layers trimmed away; layer index == absolute score always
}

// dominates reports whether p dominates q: p.I >= q.I && p.J >= q.J.
func dominates(p, q block.Pos) bool { return p.I >= q.I && p.J >= q.J }

// New builds a HintContours from a start->outgoing-arrows grouping.
// maxLen bounds how many consecutive layers a single arrow can span
// (internal/heuristic passes the longest arrow's query span plus its cost).
func New(arrowsByStart map[block.Pos][]Arrow, sink block.Pos, maxLen int) *HintContours {
	c := &HintContours{
		sink:    sink,
		maxLen:  maxLen,
		layerOf: make(map[block.Pos]int),
	}
	c.layers = append(c.layers, []block.Pos{sink})
	c.layerOf[sink] = 0

	positions := make([]block.Pos, 0, len(arrowsByStart))
	for p := range arrowsByStart {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		sa, sb := int64(a.I)+int64(a.J), int64(b.I)+int64(b.J)
		if sa != sb {
			return sa > sb
		}
		if a.I != b.I {
			return a.I > b.I
		}
		return a.J > b.J
	})

	score := map[block.Pos]int{sink: 0}
	for _, p := range positions {
		best := 0
		has := false
		for _, arr := range arrowsByStart[p] {
			if s, ok := score[arr.End]; ok {
				v := s + int(arr.Score)
				if !has || v > best {
					best = v
					has = true
				}
			}
		}
		if !has {
			continue
		}
		c.placeAt(p, best)
		score[p] = best
	}
	return c
}

// placeAt ensures layer v exists and appends p to it, recording layerOf.
func (c *HintContours) placeAt(p block.Pos, v int) {
	for len(c.layers) <= v {
		c.layers = append(c.layers, nil)
	}
	c.layers[v] = append(c.layers[v], p)
	c.layerOf[p] = v
}

// LayersRemoved reports how many top layers have been trimmed away so far.
func (c *HintContours) LayersRemoved() int { return c.layersRemoved }

// hintProbeWindow is how many layers on either side of a hint are checked
// before falling back to a full scan, mirroring hint_contours.rs's "probe a
// few layers up, then down, else fall back" strategy.
const hintProbeWindow = 5

// windowDominates reports whether some point in layers [v, min(v+maxLen,top)]
// dominates q — the core test both Score and ScoreWithHint probe with.
func (c *HintContours) windowDominates(v, top int, q block.Pos) bool {
	hi := v + c.maxLen
	if hi > top {
		hi = top
	}
	for w := v; w <= hi; w++ {
		for _, p := range c.layers[w] {
			if dominates(p, q) {
				return true
			}
		}
	}
	return false
}

// Score returns the largest layer v such that some point in layers
// [v, v+maxLen] dominates q.
func (c *HintContours) Score(q block.Pos) block.Cost {
	top := len(c.layers) - 1
	for v := top; v >= 0; v-- {
		if c.windowDominates(v, top, q) {
			return block.Cost(v)
		}
	}
	return 0
}

// ScoreWithHint resolves q using hint as a starting guess: it probes
// hintProbeWindow layers above and below the hinted layer before falling
// back to Score's full top-down scan. Nearby repeated queries — the common
// case while walking a growing DP frontier — resolve in O(hintProbeWindow)
// instead of O(top) layer scans. A hint recorded before layers above it were
// trimmed (see compactTopLayers) is simply clamped to the current top; layer
// indices themselves never get renumbered, so a stale hint is never wrong,
// only a less useful starting guess.
func (c *HintContours) ScoreWithHint(q block.Pos, hint Hint) (block.Cost, Hint) {
	top := len(c.layers) - 1
	if top >= 0 {
		guess := hint.OriginalLayer
		if guess < 0 {
			guess = 0
		}
		if guess > top {
			guess = top
		}
		lo := guess - hintProbeWindow
		if lo < 0 {
			lo = 0
		}
		hi := guess + hintProbeWindow
		if hi > top {
			hi = top
		}
		for v := hi; v >= lo; v-- {
			if c.windowDominates(v, top, q) {
				return block.Cost(v), Hint{OriginalLayer: v}
			}
		}
	}
	v := c.Score(q)
	return v, Hint{OriginalLayer: int(v)}
}

// PruneWithHint recomputes p's layer from its remaining outgoing arrows
// (already drained of the pruned ones by the caller) and re-homes it.
// changed reports whether p's layer moved. A point's best reachable score
// can only ever decrease as arrows are pruned away (pruning never adds
// arrows), so once re-homed p never needs a layer index higher than its old
// one; this is what makes compactTopLayers's trim-from-the-top-only
// direction safe — a vacated top layer is never revisited by a later,
// lower-scoring placement. Afterwards it trims any now-empty top layers,
// reporting how many: LayersRemoved() accumulates this purely as a metric,
// since layer indices themselves are absolute and never renumbered.
func (c *HintContours) PruneWithHint(p block.Pos, _ Hint, remaining []Arrow) (changed bool, shift block.I) {
	oldV, ok := c.layerOf[p]
	if !ok {
		return false, 0
	}

	best := 0
	has := false
	for _, arr := range remaining {
		endLayer, ok := c.layerOf[arr.End]
		if !ok {
			continue
		}
		v := endLayer + int(arr.Score)
		if !has || v > best {
			best = v
			has = true
		}
	}

	c.removeFromLayer(p, oldV)
	if !has {
		delete(c.layerOf, p)
	} else {
		c.placeAt(p, best)
	}
	changed = !has || best != oldV

	shift = block.I(c.compactTopLayers())
	return changed, shift
}

// compactTopLayers drops a contiguous run of now-empty layers from the top
// of c.layers, down to (but never including) layer 0, which always holds
// the permanent sink. Safe without renumbering: see PruneWithHint. Returns
// the number of layers removed.
func (c *HintContours) compactTopLayers() int {
	run := 0
	for top := len(c.layers) - 1; top > 0 && len(c.layers[top]) == 0; top-- {
		run++
	}
	if run == 0 {
		return 0
	}
	c.layers = c.layers[:len(c.layers)-run]
	c.layersRemoved += run
	return run
}

func (c *HintContours) removeFromLayer(p block.Pos, v int) {
	layer := c.layers[v]
	for i, q := range layer {
		if q == p {
			c.layers[v] = append(layer[:i], layer[i+1:]...)
			return
		}
	}
}
