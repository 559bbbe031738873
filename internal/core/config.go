package core

// RuntimeConfig describes the host a Machine runs in: the viewport it is
// projected onto, the frame rate of the driver and the obstacle seed.
type RuntimeConfig struct {
	ScreenW  int   // viewport width in cells
	ScreenH  int   // viewport height in cells
	TickRate int   // driver frames per second
	Seed     int64 // base seed; each round derives its own from it
}

// DefaultConfig is an 80x24 terminal at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}
