package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// Matches defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Height:     600,
			Width:      0,
			CellAspect: 0.5,
		},
		Physics: FlappyPhysics{
			Gravity:       0.2,
			JumpVelocity:  -6,
			JumpCooldown:  1.2,
			FlapThreshold: 1,
		},
		Obstacles: FlappyObstacles{
			Width:     78,
			GapMin:    125,
			GapMax:    175,
			GapTopMin: 100,
			GapTopMax: 325,
		},
		Player: FlappyPlayer{
			Width:     34,
			Height:    24,
			StartY:    300,
			XFraction: 0.125,
		},
		Difficulty: FlappyDifficulty{
			InitialInterval: 180,
			InitialVelocity: -1,
			IntervalAccel:   -0.0024,
			VelocityAccel:   -0.001,
			MinInterval:     60,
			MaxSpeed:        4,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
