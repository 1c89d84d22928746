package gapa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gapa/internal/blocks"
)

func TestCigarFromStepsMergesMatchAndSub(t *testing.T) {
	steps := []blocks.Step{
		{Op: blocks.Match, Len: 3},
		{Op: blocks.Sub, Len: 1},
		{Op: blocks.Match, Len: 2},
		{Op: blocks.Ins, Len: 1},
		{Op: blocks.Del, Len: 2},
	}
	c := cigarFromSteps(steps)
	assert.Equal(t, "6M1I2D", c.String())
	assert.EqualValues(t, 7, c.QueryLen())
	assert.EqualValues(t, 8, c.RefLen())
}

func TestCigarFromStepsEmpty(t *testing.T) {
	assert.Nil(t, cigarFromSteps(nil))
}

func TestCostOfSteps(t *testing.T) {
	steps := []blocks.Step{
		{Op: blocks.Match, Len: 3},
		{Op: blocks.Sub, Len: 1},
		{Op: blocks.Ins, Len: 2},
	}
	assert.EqualValues(t, 3, costOfSteps(steps))
}
