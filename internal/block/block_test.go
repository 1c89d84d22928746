package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapa/internal/dna"
)

func TestJRangeRounding(t *testing.T) {
	r := JRange{Lo: 5, Hi: 130}
	out := r.RoundOut()
	assert.Equal(t, JRange{Lo: 0, Hi: 192}, out)

	in := r.RoundIn()
	assert.Equal(t, JRange{Lo: 64, Hi: 128}, in)
}

func TestJRangeUnionIntersectSubset(t *testing.T) {
	a := JRange{Lo: 0, Hi: 64}
	b := JRange{Lo: 32, Hi: 96}
	assert.Equal(t, JRange{Lo: 0, Hi: 96}, a.Union(b))
	assert.Equal(t, JRange{Lo: 32, Hi: 64}, a.Intersect(b))
	assert.True(t, JRange{Lo: 10, Hi: 20}.Subset(a))
	assert.False(t, b.Subset(a))
}

func TestFirstCol(t *testing.T) {
	blk := FirstCol(JRange{Lo: 0, Hi: 10})
	require.NoError(t, blk.CheckTopBotVal())
	assert.Equal(t, JRange{Lo: 0, Hi: 64}, blk.JRange)

	v, err := blk.Index(0)
	require.NoError(t, err)
	assert.Equal(t, Cost(0), v)

	v, err = blk.Index(5)
	require.NoError(t, err)
	assert.Equal(t, Cost(5), v)

	// Every row of the rounded-out 64-word slab carries a +1 delta, since
	// FirstCol's boundary column covers the full stored range.
	v, err = blk.Index(63)
	require.NoError(t, err)
	assert.Equal(t, Cost(63), v)
}

func TestGetDiffOutOfRange(t *testing.T) {
	blk := FirstCol(JRange{Lo: 0, Hi: 10})
	_, ok := blk.GetDiff(-1)
	assert.False(t, ok)
	_, ok = blk.GetDiff(200)
	assert.False(t, ok)

	d, ok := blk.GetDiff(3)
	require.True(t, ok)
	assert.Equal(t, int8(1), d)
}

func TestCheckTopBotValDetectsInconsistency(t *testing.T) {
	blk := &Block{
		JRange: JRange{Lo: 0, Hi: 64},
		Offset: 0,
		V:      []dna.VWord{dna.One()},
		TopVal: 0,
		BotVal: 63, // should be 64
	}
	err := blk.CheckTopBotVal()
	require.ErrorIs(t, err, ErrInconsistent)
}
