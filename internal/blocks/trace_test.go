package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gapa/internal/block"
)

func TestTraceIdenticalSequencesAllMatch(t *testing.T) {
	e := newTestEngine(t, "ACGT", "ACGT", true, false, false)
	require.NoError(t, e.Init(block.JRange{Lo: 0, Hi: 4}))
	require.NoError(t, e.ComputeNextBlock(block.IRange{Lo: 0, Hi: 4}, block.JRange{Lo: 0, Hi: 4}, nil))

	steps, err := e.Trace(block.Pos{I: 0, J: 0}, block.Pos{I: 4, J: 4}, nil)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, Step{Op: Match, Len: 4}, steps[0])
}

func TestTraceSingleSubstitution(t *testing.T) {
	e := newTestEngine(t, "ACGT", "AGGT", true, false, false)
	require.NoError(t, e.Init(block.JRange{Lo: 0, Hi: 4}))
	require.NoError(t, e.ComputeNextBlock(block.IRange{Lo: 0, Hi: 4}, block.JRange{Lo: 0, Hi: 4}, nil))

	steps, err := e.Trace(block.Pos{I: 0, J: 0}, block.Pos{I: 4, J: 4}, nil)
	require.NoError(t, err)
	require.Equal(t, []Step{
		{Op: Match, Len: 1},
		{Op: Sub, Len: 1},
		{Op: Match, Len: 2},
	}, steps)
}

func TestTraceInsertion(t *testing.T) {
	// a = "ACCGT" against b = "ACGT": the extra C in a is an insertion.
	e := newTestEngine(t, "ACCGT", "ACGT", true, false, false)
	require.NoError(t, e.Init(block.JRange{Lo: 0, Hi: 4}))
	require.NoError(t, e.ComputeNextBlock(block.IRange{Lo: 0, Hi: 5}, block.JRange{Lo: 0, Hi: 4}, nil))

	steps, err := e.Trace(block.Pos{I: 0, J: 0}, block.Pos{I: 5, J: 4}, nil)
	require.NoError(t, err)

	var totalA, totalB int32
	for _, s := range steps {
		switch s.Op {
		case Match, Sub:
			totalA += s.Len
			totalB += s.Len
		case Ins:
			totalA += s.Len
		case Del:
			totalB += s.Len
		}
	}
	assert.EqualValues(t, 5, totalA)
	assert.EqualValues(t, 4, totalB)
}
