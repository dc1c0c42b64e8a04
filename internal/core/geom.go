// Package core provides fundamental types and utilities for the game platform.
// It has no Bubble Tea dependency so game logic stays pure and testable;
// the only third-party import is go-colorful for color math.
package core

import "cmp"

// Rect is an axis-aligned box in terminal cells, used for layout and for
// hit-testing mouse clicks. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks r by n cells on every side. The size never goes negative.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(0, r.W-2*n),
		H: max(0, r.H-2*n),
	}
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
