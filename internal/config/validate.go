package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
// All violations are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	pf, ph, ob, pl, d := c.Playfield, c.Physics, c.Obstacles, c.Player, c.Difficulty

	check(pf.Height > 0, "playfield.height must be positive, got %g", pf.Height)
	check(pf.Width >= 0, "playfield.width must be zero or positive, got %g", pf.Width)
	check(pf.Width > 0 || pf.CellAspect > 0, "playfield.cell_aspect must be positive when width is derived, got %g", pf.CellAspect)

	check(ph.Gravity >= 0, "physics.gravity must not be negative, got %g", ph.Gravity)
	check(ph.JumpVelocity < 0, "physics.jump_velocity must be negative (upwards), got %g", ph.JumpVelocity)
	check(ph.JumpCooldown >= 0, "physics.jump_cooldown must not be negative, got %g", ph.JumpCooldown)
	check(ph.FlapThreshold >= 0, "physics.flap_threshold must not be negative, got %g", ph.FlapThreshold)

	check(ob.Width > 0, "obstacles.width must be positive, got %g", ob.Width)
	check(ob.GapMin > 0, "obstacles.gap_min must be positive, got %g", ob.GapMin)
	check(ob.GapMax >= ob.GapMin, "obstacles.gap_max (%g) must be >= gap_min (%g)", ob.GapMax, ob.GapMin)
	check(ob.GapTopMin >= 0, "obstacles.gap_top_min must not be negative, got %g", ob.GapTopMin)
	check(ob.GapTopMax >= ob.GapTopMin, "obstacles.gap_top_max (%g) must be >= gap_top_min (%g)", ob.GapTopMax, ob.GapTopMin)
	check(ob.GapTopMax+ob.GapMax <= pf.Height, "obstacles.gap_top_max + gap_max (%g) must fit in playfield.height (%g)", ob.GapTopMax+ob.GapMax, pf.Height)

	check(pl.Width > 0, "player.width must be positive, got %g", pl.Width)
	check(pl.Height > 0 && pl.Height < ob.GapMin, "player.height must be positive and smaller than gap_min, got %g", pl.Height)
	check(pl.StartY >= 0 && pl.StartY <= pf.Height-pl.Height, "player.start_y must keep the body inside the playfield, got %g", pl.StartY)
	check(pl.XFraction > 0 && pl.XFraction < 1, "player.x_fraction must be in (0, 1), got %g", pl.XFraction)

	check(d.InitialInterval > 0, "difficulty.initial_interval must be positive, got %g", d.InitialInterval)
	check(d.InitialVelocity < 0, "difficulty.initial_velocity must be negative (leftwards), got %g", d.InitialVelocity)
	check(d.IntervalAccel <= 0, "difficulty.interval_accel must not be positive, got %g", d.IntervalAccel)
	check(d.VelocityAccel <= 0, "difficulty.velocity_accel must not be positive, got %g", d.VelocityAccel)
	check(d.MinInterval > 0 && d.MinInterval <= d.InitialInterval, "difficulty.min_interval must be in (0, initial_interval], got %g", d.MinInterval)
	check(d.MaxSpeed >= -d.InitialVelocity, "difficulty.max_speed (%g) must be >= |initial_velocity| (%g)", d.MaxSpeed, -d.InitialVelocity)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
}
