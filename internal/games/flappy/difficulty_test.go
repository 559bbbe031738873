package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestRampAdvance(t *testing.T) {
	r := NewRamp(config.DefaultFlappyConfig().Difficulty)
	r.Advance(10)

	approx(t, "Interval", r.Interval, 180-0.024)
	approx(t, "Velocity", r.Velocity, -1-0.01)
}

func TestRampMonotonic(t *testing.T) {
	r := NewRamp(config.DefaultFlappyConfig().Difficulty)
	prevInterval, prevVelocity := r.Interval, r.Velocity

	for i := 0; i < 100; i++ {
		r.Advance(1)
		if r.Interval > prevInterval {
			t.Fatalf("interval grew at frame %d", i)
		}
		if r.Velocity > prevVelocity {
			t.Fatalf("speed shrank at frame %d", i)
		}
		prevInterval, prevVelocity = r.Interval, r.Velocity
	}
}

func TestRampClamps(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Difficulty
	r := NewRamp(cfg)
	r.Advance(1e6)

	if r.Interval != cfg.MinInterval {
		t.Errorf("Interval = %v, expected floor %v", r.Interval, cfg.MinInterval)
	}
	if r.Velocity != -cfg.MaxSpeed {
		t.Errorf("Velocity = %v, expected -max_speed %v", r.Velocity, -cfg.MaxSpeed)
	}
}

func TestRampResetExact(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Difficulty
	r := NewRamp(cfg)
	for i := 0; i < 1234; i++ {
		r.Advance(0.7)
	}
	r.Reset()

	if r.Interval != cfg.InitialInterval || r.Velocity != cfg.InitialVelocity {
		t.Errorf("Reset gave (%v, %v), expected (%v, %v)",
			r.Interval, r.Velocity, cfg.InitialInterval, cfg.InitialVelocity)
	}
}

func TestRampFixedPreset(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	config.ApplyFlappyPreset(&cfg, config.DifficultyFixed)

	r := NewRamp(cfg.Difficulty)
	r.Advance(500)

	if r.Interval != cfg.Difficulty.InitialInterval || r.Velocity != cfg.Difficulty.InitialVelocity {
		t.Error("fixed preset should keep the ramp constant")
	}
}
