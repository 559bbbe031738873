package tui

import (
	"math"
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(1000, 0)

	if d := c.Delta(t0); d != 1 {
		t.Errorf("first delta = %v, expected 1", d)
	}
	if d := c.Delta(t0.Add(frameUnit)); math.Abs(d-1) > 1e-9 {
		t.Errorf("one frame later delta = %v, expected 1", d)
	}
	if d := c.Delta(t0.Add(frameUnit + frameUnit/2)); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("half frame later delta = %v, expected 0.5", d)
	}
	if d := c.Delta(t0.Add(time.Hour)); d != maxDelta {
		t.Errorf("stall delta = %v, expected cap %v", d, maxDelta)
	}
	if d := c.Delta(t0); d != 0 {
		t.Errorf("backwards clock delta = %v, expected 0", d)
	}

	c.Reset()
	if d := c.Delta(t0.Add(2 * time.Hour)); d != 1 {
		t.Errorf("delta after Reset = %v, expected 1", d)
	}
}

func TestTickLoopsAreUnique(t *testing.T) {
	if newTickLoop() == newTickLoop() {
		t.Error("tick loops should be distinct")
	}
}
