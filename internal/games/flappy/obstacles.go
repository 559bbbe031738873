package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Pair is one gap between an upper and a lower obstacle segment.
type Pair struct {
	X       float64 // left edge
	TopY    float64 // bottom of the upper segment
	BottomY float64 // top of the lower segment
	Scored  bool    // whether the body has passed this pair
}

// Gap returns the vertical size of the opening.
func (p Pair) Gap() float64 {
	return p.BottomY - p.TopY
}

// Track owns the active pairs in spawn order, plus spawn timing.
type Track struct {
	pairs     []Pair
	rng       *rand.Rand
	cfg       config.FlappyObstacles
	spawnX    float64
	lastSpawn float64
}

// NewTrack creates an empty track spawning pairs at spawnX.
func NewTrack(seed int64, spawnX float64, cfg config.FlappyObstacles) *Track {
	t := &Track{
		pairs:  make([]Pair, 0, 8),
		cfg:    cfg,
		spawnX: spawnX,
	}
	t.Reset(seed)
	return t
}

// Reset clears all pairs and reseeds the RNG. The spawn timer is rewound
// to the distant past, so the first SpawnIfDue of a round always fires.
func (t *Track) Reset(seed int64) {
	t.pairs = t.pairs[:0]
	t.rng = rand.New(rand.NewSource(seed))
	t.lastSpawn = math.Inf(-1)
}

// SpawnIfDue appends one pair when more than interval frames have passed
// since the last spawn. Overshoot never produces more than one pair per call.
func (t *Track) SpawnIfDue(now, interval float64) bool {
	if now <= t.lastSpawn+interval {
		return false
	}

	top := t.cfg.GapTopMin + t.rng.Float64()*(t.cfg.GapTopMax-t.cfg.GapTopMin)
	gap := t.cfg.GapMin + t.rng.Float64()*(t.cfg.GapMax-t.cfg.GapMin)

	t.pairs = append(t.pairs, Pair{
		X:       t.spawnX,
		TopY:    top,
		BottomY: top + gap,
	})
	t.lastSpawn = now
	return true
}

// AdvanceAndScore moves every pair left by |velocity|, scores pairs that fell
// behind bodyX, and drops pairs whose trailing edge left the playfield.
// Returns the number of newly scored pairs.
func (t *Track) AdvanceAndScore(velocity, bodyX float64) int {
	step := math.Abs(velocity)
	scored := 0

	kept := t.pairs[:0]
	for _, p := range t.pairs {
		p.X -= step

		if !p.Scored && p.X < bodyX-t.cfg.Width {
			p.Scored = true
			scored++
		}

		if p.X < -t.cfg.Width {
			continue
		}
		kept = append(kept, p)
	}
	t.pairs = kept

	return scored
}

// Pairs returns the active pairs in spawn order. The slice is owned by the
// track and is only valid until the next mutation.
func (t *Track) Pairs() []Pair {
	return t.pairs
}

// LastSpawn returns the clock value of the most recent spawn.
func (t *Track) LastSpawn() float64 {
	return t.lastSpawn
}
