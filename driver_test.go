package gapa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallParams() Params {
	p := DefaultParams()
	p.K = 4
	p.MaxMatchCost = 1
	return p
}

func TestAlignIdenticalSequencesZeroDistance(t *testing.T) {
	seq := []byte("ACGTACGT")
	dist, cigar, stats, err := Align(seq, seq, smallParams(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 0, dist)
	require.NotNil(t, cigar)
	assert.Equal(t, "8M", cigar.String())
	assert.NotEmpty(t, stats.RunID)
}

func TestAlignSingleSubstitution(t *testing.T) {
	a := []byte("ACGTACGT")
	b := []byte("ACGAACGT")
	dist, cigar, _, err := Align(a, b, smallParams(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dist)
	assert.EqualValues(t, len(a), cigar.QueryLen())
	assert.EqualValues(t, len(b), cigar.RefLen())
}

func TestAlignSingleDeletion(t *testing.T) {
	a := []byte("ACGTACGT")
	b := []byte("ACGACGT")
	dist, cigar, _, err := Align(a, b, smallParams(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dist)
	assert.EqualValues(t, len(a), cigar.QueryLen())
	assert.EqualValues(t, len(b), cigar.RefLen())
}

func TestAlignSingleInsertion(t *testing.T) {
	a := []byte("ACGACGT")
	b := []byte("ACGTACGT")
	dist, cigar, _, err := Align(a, b, smallParams(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dist)
	assert.EqualValues(t, len(a), cigar.QueryLen())
	assert.EqualValues(t, len(b), cigar.RefLen())
}

func TestAlignRejectsEmptySequences(t *testing.T) {
	_, _, _, err := Align(nil, []byte("ACGT"), smallParams(), nil)
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, _, _, err = Align([]byte("ACGT"), nil, smallParams(), nil)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestAlignRejectsInvalidParams(t *testing.T) {
	p := smallParams()
	p.BlockWidth = 0
	_, _, _, err := Align([]byte("ACGT"), []byte("ACGT"), p, nil)
	assert.ErrorIs(t, err, ErrBadBlockWidth)
}

func TestAlignLongerRandomPair(t *testing.T) {
	a := []byte("ACGTACGTTGCAACGTACGTTGCAACGTACGTTGCAACGTACGTTGCAACGTACGTTGCA")
	b := []byte("ACGTACGTTGCAACGTACCTTGCAACGTACGTTGAAACGTACGTTGCAACGTACGTTGCG")
	p := DefaultParams()
	dist, cigar, stats, err := Align(a, b, p, nil)
	require.NoError(t, err)
	assert.EqualValues(t, len(a), cigar.QueryLen())
	assert.EqualValues(t, len(b), cigar.RefLen())
	assert.LessOrEqual(t, dist, Cost(len(a)+len(b)))
	assert.Greater(t, dist, Cost(0))
	assert.GreaterOrEqual(t, stats.SeedMatches, 0)
}
