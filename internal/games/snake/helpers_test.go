package snake

import (
	"time"

	"github.com/vovakirdan/snake-eater/internal/core"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// scriptedRand replays a fixed sequence of draws, cycling when exhausted.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// cellRand returns a source whose draws make Food.Generate sample the
// given cells in order.
func cellRand(g Grid, cells ...Cell) *scriptedRand {
	r := &scriptedRand{}
	for _, c := range cells {
		r.vals = append(r.vals,
			(float64(c.X/g.Size)+0.5)/float64(g.Cols()),
			(float64(c.Y/g.Size)+0.5)/float64(g.Rows()),
		)
	}
	return r
}

func newTestGame(rng Rand) (*Game, *core.ManualClock) {
	clock := core.NewManualClock(testEpoch)
	return New(DefaultSettings(), clock, rng), clock
}

// step advances the clock past the current interval and updates once.
func step(g *Game, clock *core.ManualClock) []Event {
	clock.Advance(time.Duration(g.IntervalMs()+1) * time.Millisecond)
	return g.Update()
}

// recorder collects listener calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) listeners() Listeners {
	return Listeners{
		Score:      func(int) { r.calls = append(r.calls, "score") },
		GameOver:   func() { r.calls = append(r.calls, "game-over") },
		Background: func(Theme) { r.calls = append(r.calls, "background") },
		Speed:      func(int) { r.calls = append(r.calls, "speed") },
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func sameKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
