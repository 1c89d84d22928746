package viz_test

import (
	"testing"

	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/viz"
)

func TestNoopSatisfiesSink(t *testing.T) {
	var s viz.Sink = viz.Noop{}
	s.ExpandBlock(block.Pos{I: 0, J: 0}, 64, 0, 0)
	s.Extend(block.Pos{}, 0, 0)
	s.HCall(block.Pos{})
	s.FCall(block.Pos{}, true, false)
	s.JRangeEvent(0, 64)
	s.FixedJRangeEvent(0, 32)
	s.NewLayer()
	s.AddMeetingPoint(block.Pos{})
	s.LastFrame(nil)
}

// collectingSink is a test double recording calls, used by this file's
// tests to assert which events an operation emits.
type collectingSink struct {
	viz.Noop
	expandCount int
}

func (c *collectingSink) ExpandBlock(pos block.Pos, size int32, g, f block.Cost) {
	c.expandCount++
}

func TestCollectingSinkOverridesOneMethod(t *testing.T) {
	c := &collectingSink{}
	var s viz.Sink = c
	s.ExpandBlock(block.Pos{}, 64, 0, 0)
	s.NewLayer()
	if c.expandCount != 1 {
		t.Fatalf("want 1 expand call, got %d", c.expandCount)
	}
}
