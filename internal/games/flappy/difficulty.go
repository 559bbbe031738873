package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Ramp tightens the spawn interval and speeds up obstacles over a round.
type Ramp struct {
	Interval float64 // frames between spawns
	Velocity float64 // horizontal obstacle velocity, negative = leftwards
	cfg      config.FlappyDifficulty
}

// NewRamp creates a ramp at its initial values.
func NewRamp(cfg config.FlappyDifficulty) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset restores the exact configured initial values.
func (r *Ramp) Reset() {
	r.Interval = r.cfg.InitialInterval
	r.Velocity = r.cfg.InitialVelocity
}

// Advance applies the accelerators for delta frames. The interval never drops
// below MinInterval and the speed never exceeds MaxSpeed.
func (r *Ramp) Advance(delta float64) {
	r.Interval += r.cfg.IntervalAccel * delta
	r.Velocity += r.cfg.VelocityAccel * delta

	r.Interval = math.Max(r.Interval, r.cfg.MinInterval)
	r.Velocity = math.Max(r.Velocity, -r.cfg.MaxSpeed)
}
