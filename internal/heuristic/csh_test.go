package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/internal/dna"
	"github.com/katalvlaran/gapa/internal/seed"
)

func TestHZeroAtTargetWithFullChain(t *testing.T) {
	a, err := dna.Encode([]byte("ACGTACGT"))
	require.NoError(t, err)
	b, err := dna.Encode([]byte("ACGTACGT"))
	require.NoError(t, err)

	matches, err := seed.Find(a, b, 4, 1)
	require.NoError(t, err)

	target := block.Pos{I: block.I(len(a)), J: block.I(len(b))}
	c := New(target, matches, false)

	h := c.H(block.Pos{I: 0, J: 0})
	assert.Equal(t, block.Cost(0), h, "identical sequences with full seed coverage have zero remaining cost")
}

func TestHFallsBackToGapCostWithoutMatches(t *testing.T) {
	a, err := dna.Encode([]byte("AAAA"))
	require.NoError(t, err)
	b, err := dna.Encode([]byte("TTTTTT")) // two rows longer: gap cost 2
	require.NoError(t, err)

	matches, err := seed.Find(a, b, 4, 1)
	require.NoError(t, err)
	target := block.Pos{I: 4, J: 6}
	c := New(target, matches, false)

	h := c.H(block.Pos{I: 0, J: 0})
	// No shared q-grams, so the contour score is 0 and H falls back to the
	// gap cost |di-dj| = |4-6| = 2, not the larger Chebyshev distance 6: an
	// alignment only has to close the length difference between the two
	// remaining suffixes, not their full length.
	assert.Equal(t, block.Cost(2), h)
}

func TestHZeroAtTargetWithFullChainGapCostTransform(t *testing.T) {
	a, err := dna.Encode([]byte("ACGTACGT"))
	require.NoError(t, err)
	b, err := dna.Encode([]byte("ACGTACGT"))
	require.NoError(t, err)

	matches, err := seed.Find(a, b, 4, 1)
	require.NoError(t, err)

	target := block.Pos{I: block.I(len(a)), J: block.I(len(b))}
	c := New(target, matches, true)

	h := c.H(block.Pos{I: 0, J: 0})
	assert.Equal(t, block.Cost(0), h, "gap-cost transform must still be admissible: zero remaining cost when fully chained")
}

func TestPruneRemovesArrowsEndingAtPoint(t *testing.T) {
	a, err := dna.Encode([]byte("ACGTACGT"))
	require.NoError(t, err)
	b, err := dna.Encode([]byte("ACGTACGT"))
	require.NoError(t, err)

	matches, err := seed.Find(a, b, 4, 1)
	require.NoError(t, err)
	target := block.Pos{I: block.I(len(a)), J: block.I(len(b))}
	c := New(target, matches, false)

	before := len(c.arrows[block.Pos{I: 0, J: 0}])
	require.Greater(t, before, 0)

	c.Prune(block.Pos{I: 4, J: 4})
	after := len(c.arrows[block.Pos{I: 0, J: 0}])
	assert.Less(t, after, before)
}
