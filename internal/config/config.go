// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

// FlappyConfig contains every tunable constant of the simulation.
// Values are fixed for the lifetime of a Machine.
type FlappyConfig struct {
	Playfield  FlappyPlayfield  `yaml:"playfield"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty FlappyDifficulty `yaml:"difficulty"`
}

// FlappyPlayfield defines the game-space dimensions.
type FlappyPlayfield struct {
	Height float64 `yaml:"height"`
	// Width of the playfield in game units. Zero derives it from the viewport
	// aspect ratio so the playfield fills the terminal.
	Width      float64 `yaml:"width"`
	CellAspect float64 `yaml:"cell_aspect"` // cell width / cell height of the terminal font
}

// FlappyPhysics defines the body integration constants.
// Time-based values are in frame units (one nominal 1/60 s frame).
type FlappyPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	JumpCooldown  float64 `yaml:"jump_cooldown"`
	FlapThreshold float64 `yaml:"flap_threshold"`
}

// FlappyObstacles defines obstacle pair geometry.
type FlappyObstacles struct {
	Width     float64 `yaml:"width"`
	GapMin    float64 `yaml:"gap_min"`
	GapMax    float64 `yaml:"gap_max"`
	GapTopMin float64 `yaml:"gap_top_min"`
	GapTopMax float64 `yaml:"gap_top_max"`
}

// FlappyPlayer defines the body hitbox and starting point.
type FlappyPlayer struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	StartY    float64 `yaml:"start_y"`
	XFraction float64 `yaml:"x_fraction"` // horizontal position as a fraction of playfield width
}

// FlappyDifficulty defines the ramp: initial values, per-frame accelerators
// and the floor/ceiling the ramp never crosses.
type FlappyDifficulty struct {
	InitialInterval float64 `yaml:"initial_interval"`
	InitialVelocity float64 `yaml:"initial_velocity"`
	IntervalAccel   float64 `yaml:"interval_accel"`
	VelocityAccel   float64 `yaml:"velocity_accel"`
	MinInterval     float64 `yaml:"min_interval"`
	MaxSpeed        float64 `yaml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}
