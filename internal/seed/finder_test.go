package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/internal/dna"
)

func encode(t *testing.T, s string) []dna.Base {
	t.Helper()
	b, err := dna.Encode([]byte(s))
	require.NoError(t, err)
	return b
}

func TestFindExactSeedsIdenticalSequences(t *testing.T) {
	a := encode(t, "ACGTACGT")
	b := encode(t, "ACGTACGT")

	m, err := Find(a, b, 4, 1)
	require.NoError(t, err)
	require.Len(t, m.Seeds, 2)

	// Every seed must match itself exactly at its own position.
	found := map[block.Pos]bool{}
	for _, match := range m.Matches {
		assert.EqualValues(t, 0, match.Cost)
		found[match.Start] = true
	}
	assert.True(t, found[block.Pos{I: 0, J: 0}])
	assert.True(t, found[block.Pos{I: 4, J: 4}])
}

func TestFindOneErrorNeighbourhood(t *testing.T) {
	// b has a single substitution relative to a's seed window.
	a := encode(t, "ACGT")
	b := encode(t, "AGGT")

	m, err := Find(a, b, 4, 2)
	require.NoError(t, err)

	var sawCost1 bool
	for _, match := range m.Matches {
		if match.Cost == 1 {
			sawCost1 = true
		}
	}
	assert.True(t, sawCost1, "1-error match finder should surface the substitution neighbour")
}

func TestPotentialAndStartOfSeed(t *testing.T) {
	a := encode(t, "ACGTACGT")
	b := encode(t, "ACGTACGT")

	m, err := Find(a, b, 4, 1)
	require.NoError(t, err)

	assert.EqualValues(t, 0, m.Potential[8])
	assert.EqualValues(t, 1, m.Potential[4]) // only seed [4,8) is fully contained in [4,8)
	assert.EqualValues(t, 2, m.Potential[0]) // both seeds fully contained in [0,8)
	assert.EqualValues(t, block.I(0), m.StartOfSeed[0])
	assert.EqualValues(t, block.I(0), m.StartOfSeed[3])
	assert.EqualValues(t, block.I(4), m.StartOfSeed[4])
}

func TestDedupKeepsMinCost(t *testing.T) {
	matches := []Match{
		{Start: block.Pos{I: 0, J: 0}, End: block.Pos{I: 4, J: 4}, Cost: 1},
		{Start: block.Pos{I: 0, J: 0}, End: block.Pos{I: 4, J: 4}, Cost: 0},
	}
	out := dedup(matches)
	require.Len(t, out, 1)
	assert.EqualValues(t, 0, out[0].Cost)
}
