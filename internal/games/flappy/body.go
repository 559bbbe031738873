package flappy

// Pose is the presentation state of the body derived from its velocity.
// It never feeds back into physics.
type Pose int

const (
	PoseNeutral    Pose = iota // wings level
	PoseAscending              // rising faster than the flap threshold
	PoseDescending             // falling faster than the flap threshold
)

// String returns a human-readable name for the pose.
func (p Pose) String() string {
	switch p {
	case PoseAscending:
		return "ascending"
	case PoseDescending:
		return "descending"
	default:
		return "neutral"
	}
}

// Body is the player-controlled entity. Y grows downwards; X is fixed for
// the lifetime of a Machine.
type Body struct {
	X, Y float64 // top-left corner in game units
	VY   float64 // vertical velocity in game units per frame
	W, H float64 // hitbox size
}

// Integrate advances the body by delta frames using semi-implicit Euler:
// velocity first, then position with the new velocity. No bounds are applied.
func (b *Body) Integrate(delta, gravity float64) {
	b.VY += delta * gravity
	b.Y += delta * b.VY
}

// Jump overwrites the vertical velocity with the jump impulse.
func (b *Body) Jump(velocity float64) {
	b.VY = velocity
}

// Pose classifies the current velocity into one of three bands.
func (b Body) Pose(threshold float64) Pose {
	switch {
	case b.VY < -threshold:
		return PoseAscending
	case b.VY > threshold:
		return PoseDescending
	default:
		return PoseNeutral
	}
}
