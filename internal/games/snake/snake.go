package snake

import (
	"time"

	"github.com/vovakirdan/snake-eater/internal/core"
)

// DefaultTurnThrottle is the minimum time after a move before a turn is
// accepted. It stops two quick key presses from folding the snake onto
// itself within a single tick.
const DefaultTurnThrottle = 50 * time.Millisecond

// Snake is the player's body, head first.
type Snake struct {
	grid     Grid
	clock    core.Clock
	throttle time.Duration

	body          []Cell
	direction     Direction
	nextDirection Direction
	growPending   bool
	lastMove      time.Time
}

// NewSnake creates a one-cell snake at start heading right.
// A zero lastMove means the first turn is never throttled.
func NewSnake(grid Grid, start Cell, clock core.Clock, throttle time.Duration) *Snake {
	return &Snake{
		grid:          grid,
		clock:         clock,
		throttle:      throttle,
		body:          []Cell{start},
		direction:     DirRight,
		nextDirection: DirRight,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Length returns the committed length: the body plus one cell of pending
// growth, which is added on the next move.
func (s *Snake) Length() int {
	if s.growPending {
		return len(s.body) + 1
	}
	return len(s.body)
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction {
	return s.direction
}

// NextDirection returns the direction the next move will take.
func (s *Snake) NextDirection() Direction {
	return s.nextDirection
}

// GrowPending reports whether the next move keeps the tail.
func (s *Snake) GrowPending() bool {
	return s.growPending
}

// ChangeDirection queues a turn for the next move. Reversals onto the
// current direction and turns within the throttle window after a move are
// dropped. Among accepted turns the last one wins.
func (s *Snake) ChangeDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	if s.clock.Now().Sub(s.lastMove) < s.throttle {
		return false
	}
	s.nextDirection = d
	return true
}

// Move advances the head one cell, dropping the tail unless growth is
// pending. The head is not wrapped; see WrapHead.
func (s *Snake) Move() {
	s.direction = s.nextDirection
	head := s.grid.Step(s.body[0], s.direction)

	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.growPending {
		s.growPending = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	s.lastMove = s.clock.Now()
}

// WrapHead brings a head that left the grid back in from the opposite edge.
func (s *Snake) WrapHead() {
	s.body[0] = s.grid.Wrap(s.body[0])
}

// Grow makes the next move keep the tail. Calls between two moves collapse
// into a single cell of growth.
func (s *Snake) Grow() {
	s.growPending = true
}

// CheckSelfCollision reports whether the head overlaps any other body cell.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, c := range s.body[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}
