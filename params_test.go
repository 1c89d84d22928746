package gapa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParamsValidates(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())
}

func TestValidateRejectsBadBlockWidth(t *testing.T) {
	p := DefaultParams()
	p.BlockWidth = -1
	assert.ErrorIs(t, p.Validate(), ErrBadBlockWidth)
}

func TestValidateRejectsBadK(t *testing.T) {
	p := DefaultParams()
	p.K = 0
	assert.ErrorIs(t, p.Validate(), ErrBadK)
}

func TestValidateRejectsMaxMatchCostTooLarge(t *testing.T) {
	p := DefaultParams()
	p.K = 2
	p.MaxMatchCost = 1
	assert.ErrorIs(t, p.Validate(), ErrBadMaxMatchCost)
}

func TestValidateRejectsMaxMatchCostOutOfRange(t *testing.T) {
	p := DefaultParams()
	p.MaxMatchCost = 2
	assert.ErrorIs(t, p.Validate(), ErrBadMaxMatchCost)
}
