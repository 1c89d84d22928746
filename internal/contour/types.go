package contour

import "github.com/katalvlaran/gapa/internal/block"

// Arrow is a match in the transformed coordinate system: a chain step from
// Start to End worth Score.
type Arrow struct {
	Start, End block.Pos
	Score      uint8
}

// Hint opaquely associates a previously queried position with the layer it
// resolved to, letting a caller skip straight to a nearby layer on the next
// query. OriginalLayer is the absolute layer index; after top layers are
// removed, ScoreWithHint clamps a hint above the current top down to it.
type Hint struct {
	OriginalLayer int
}
