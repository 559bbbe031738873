package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// testRuntime is an 80x25 terminal (24 playfield rows).
var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  25,
	TickRate: 60,
	Seed:     1,
}

// testConfig returns the default config on a fixed 400-unit-wide playfield,
// which puts the body at x=50.
func testConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Playfield.Width = 400
	return cfg
}

// recorder captures Listener calls.
type recorder struct {
	scores    []int
	gameOvers []int
	ready     int
}

func (r *recorder) ScoreChanged(score int)  { r.scores = append(r.scores, score) }
func (r *recorder) GameOver(finalScore int) { r.gameOvers = append(r.gameOvers, finalScore) }
func (r *recorder) RestartReady()           { r.ready++ }

func (r *recorder) count(score int) int {
	n := 0
	for _, s := range r.scores {
		if s == score {
			n++
		}
	}
	return n
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, expected %v", name, got, want)
	}
}
