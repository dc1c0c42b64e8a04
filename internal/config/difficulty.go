package config

import (
	"math"

	"github.com/vovakirdan/snake-eater/internal/core"
)

// SpeedCurve describes how the tick interval ramps as food is eaten.
type SpeedCurve struct {
	InitialMs   int // Reference interval, 0% speed
	StartMs     int // Interval a new game starts at
	DecrementMs int
	MinMs       int // Fastest interval, 100% speed
}

// SpeedCurve derives the curve from the speed and difficulty sections.
// A disabled difficulty keeps the start interval for the whole game.
func (c SnakeConfig) SpeedCurve() SpeedCurve {
	s := c.Speed
	curve := SpeedCurve{
		InitialMs:   s.InitialMs,
		DecrementMs: s.DecrementMs,
		MinMs:       s.MinMs,
	}
	curve.StartMs = curve.At(c.Difficulty.InitialLevel)
	if !c.Difficulty.Enabled {
		curve.DecrementMs = 0
	}
	return curve
}

// At returns the interval at a difficulty level in [0, 1].
func (c SpeedCurve) At(level float64) int {
	level = core.Clamp(level, 0, 1)
	return c.InitialMs - int(math.Round(level*float64(c.InitialMs-c.MinMs)))
}

// Next returns the interval after one food is eaten.
func (c SpeedCurve) Next(current int) int {
	return max(c.MinMs, current-c.DecrementMs)
}

// Percentage maps an interval to 0..100 across the curve's range.
func (c SpeedCurve) Percentage(current int) int {
	span := c.InitialMs - c.MinMs
	if span <= 0 {
		return 0
	}
	return int(math.Floor(float64(c.InitialMs-current) / float64(span) * 100))
}
