package snake

// Snapshot captures the complete simulation state for determinism tests and
// debugging.
type Snapshot struct {
	Body          []Cell
	Direction     Direction
	NextDirection Direction
	GrowPending   bool
	Food          Cell
	Score         int
	IntervalMs    int
	GameOver      bool
	Background    Theme
	Ticks         int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:          g.snake.Body(),
		Direction:     g.snake.direction,
		NextDirection: g.snake.nextDirection,
		GrowPending:   g.snake.growPending,
		Food:          g.food.Position(),
		Score:         g.score,
		IntervalMs:    g.intervalMs,
		GameOver:      g.gameOver,
		Background:    g.background,
		Ticks:         g.ticks,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s.Body) != len(o.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != o.Body[i] {
			return false
		}
	}
	return s.Direction == o.Direction &&
		s.NextDirection == o.NextDirection &&
		s.GrowPending == o.GrowPending &&
		s.Food == o.Food &&
		s.Score == o.Score &&
		s.IntervalMs == o.IntervalMs &&
		s.GameOver == o.GameOver &&
		s.Background == o.Background &&
		s.Ticks == o.Ticks
}
