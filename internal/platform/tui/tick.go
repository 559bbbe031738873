// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, screens and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameUnit is the duration of one simulation frame. Physics constants are
// expressed per frame, so a delta of 1 means exactly this much wall time.
const frameUnit = time.Second / 60

// maxDelta caps a single step after a stall (suspended terminal, slow SSH
// link) so the body cannot tunnel through a pair.
const maxDelta = 4.0

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// game model that scheduled it, so a model ignores ticks left over from a
// previous game in the same session.
type TickMsg struct {
	At   time.Time
	Loop int64
}

var tickLoops atomic.Int64

// newTickLoop returns a fresh loop ID.
func newTickLoop() int64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// FrameClock converts tick timestamps into frame deltas.
type FrameClock struct {
	last time.Time
}

// Reset forgets the previous tick so the next Delta yields one frame.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// Delta returns the frames elapsed since the previous call.
// The first call after construction or Reset yields one frame.
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 1
	}
	d := float64(now.Sub(c.last)) / float64(frameUnit)
	c.last = now

	switch {
	case d < 0:
		return 0
	case d > maxDelta:
		return maxDelta
	default:
		return d
	}
}
