// Package flappy implements the simulation core of a Flappy Bird-style game:
// a falling body that flaps upward on input while obstacle pairs scroll in
// from the right at an accelerating rate.
package flappy

import (
	"math"
	"sync/atomic"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the state of the Machine.
type Phase int

const (
	PhaseIdle     Phase = iota // before the first round
	PhasePlaying               // simulation advancing
	PhaseGameOver              // frozen, waiting for Start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Machine owns the body, track and ramp and drives them through
// Idle -> Playing -> GameOver -> Playing.
//
// Start, Update and Snapshot must be called from one goroutine (the host's
// frame loop). RequestJump may be called from any goroutine.
type Machine struct {
	cfg      config.FlappyConfig
	width    float64
	seed     int64
	listener Listener

	body  Body
	track *Track
	ramp  *Ramp

	phase    Phase
	score    int
	clock    float64 // sum of deltas since Start
	lastJump float64
	rounds   int

	jumpRequested atomic.Bool
}

// New creates a Machine in the Idle phase. The config is assumed valid.
// A nil listener is allowed.
func New(cfg config.FlappyConfig, rt core.RuntimeConfig, l Listener) *Machine {
	if l == nil {
		l = ListenerFuncs{}
	}

	width := PlayfieldWidth(cfg, rt)
	m := &Machine{
		cfg:      cfg,
		width:    width,
		seed:     rt.Seed,
		listener: l,
		track:    NewTrack(rt.Seed, width, cfg.Obstacles),
		ramp:     NewRamp(cfg.Difficulty),
	}
	m.resetBody()
	m.lastJump = math.Inf(-1)
	return m
}

// PlayfieldWidth returns the configured width, or one derived from the
// viewport so that the playfield fills the terminal.
func PlayfieldWidth(cfg config.FlappyConfig, rt core.RuntimeConfig) float64 {
	if cfg.Playfield.Width > 0 {
		return cfg.Playfield.Width
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt = core.DefaultConfig()
	}
	rows := float64(PlayfieldRows(rt.ScreenH))
	return cfg.Playfield.Height * float64(rt.ScreenW) * cfg.Playfield.CellAspect / rows
}

// PlayfieldRows returns the number of screen rows the playfield occupies.
// The last row is the ground line.
func PlayfieldRows(screenH int) int {
	return max(screenH-1, 1)
}

// Start begins a new round from Idle or GameOver. It resets the body, track,
// ramp and score. Returns false (and does nothing) while Playing.
func (m *Machine) Start() bool {
	if m.phase == PhasePlaying {
		return false
	}

	m.rounds++
	m.resetBody()
	m.track.Reset(m.seed + int64(m.rounds))
	m.ramp.Reset()
	m.score = 0
	m.clock = 0
	m.lastJump = math.Inf(-1)
	m.jumpRequested.Store(false)
	m.phase = PhasePlaying

	m.listener.ScoreChanged(0)
	return true
}

// RequestJump latches a jump for the next frame. Several requests before the
// same frame collapse into one. Requests outside Playing are discarded.
func (m *Machine) RequestJump() {
	m.jumpRequested.Store(true)
}

// Update advances the simulation by delta frames. It does nothing unless
// Playing. Order per frame: pending jump, ramp, track, body, collision.
func (m *Machine) Update(delta float64) {
	if m.phase != PhasePlaying {
		m.jumpRequested.Store(false)
		return
	}

	m.clock += delta

	if m.jumpRequested.Swap(false) {
		m.tryJump()
	}

	m.ramp.Advance(delta)

	m.track.SpawnIfDue(m.clock, m.ramp.Interval)
	for n := m.track.AdvanceAndScore(m.ramp.Velocity, m.body.X); n > 0; n-- {
		m.score++
		m.listener.ScoreChanged(m.score)
	}

	m.body.Integrate(delta, m.cfg.Physics.Gravity)

	if Colliding(m.body, m.track.Pairs(), m.cfg.Obstacles.Width, m.cfg.Playfield.Height) {
		m.phase = PhaseGameOver
		m.jumpRequested.Store(false)
		m.listener.GameOver(m.score)
		m.listener.RestartReady()
	}
}

// tryJump applies the jump impulse unless the cooldown since the last
// honored jump has not elapsed yet.
func (m *Machine) tryJump() {
	if m.clock-m.lastJump < m.cfg.Physics.JumpCooldown {
		return
	}
	m.lastJump = m.clock
	m.body.Jump(m.cfg.Physics.JumpVelocity)
}

// Resize recomputes the playfield width for a new viewport. It only takes
// effect between rounds; returns false while Playing.
func (m *Machine) Resize(rt core.RuntimeConfig) bool {
	if m.phase == PhasePlaying {
		return false
	}
	m.width = PlayfieldWidth(m.cfg, rt)
	m.track.spawnX = m.width
	m.resetBody()
	return true
}

func (m *Machine) resetBody() {
	m.body = Body{
		X: m.width * m.cfg.Player.XFraction,
		Y: m.cfg.Player.StartY,
		W: m.cfg.Player.Width,
		H: m.cfg.Player.Height,
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Score returns the score of the current or last round.
func (m *Machine) Score() int {
	return m.score
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Phase     Phase
	Score     int
	Clock     float64
	Body      Body
	Pose      Pose
	Pairs     []Pair
	PairWidth float64
	Width     float64 // playfield width in game units
	Height    float64 // playfield height in game units
	Interval  float64
	Velocity  float64
}

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	pairs := make([]Pair, len(m.track.Pairs()))
	copy(pairs, m.track.Pairs())

	return Snapshot{
		Phase:     m.phase,
		Score:     m.score,
		Clock:     m.clock,
		Body:      m.body,
		Pose:      m.body.Pose(m.cfg.Physics.FlapThreshold),
		Pairs:     pairs,
		PairWidth: m.cfg.Obstacles.Width,
		Width:     m.width,
		Height:    m.cfg.Playfield.Height,
		Interval:  m.ramp.Interval,
		Velocity:  m.ramp.Velocity,
	}
}
