// Package config provides YAML-based configuration loading, validation and
// difficulty presets for Snake Eater.
package config

import (
	"fmt"

	"github.com/vovakirdan/snake-eater/internal/core"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Snake      SnakeBodyConfig  `yaml:"snake"`
	Food       FoodConfig       `yaml:"food"`
	Speed      SpeedConfig      `yaml:"speed"`
	Theme      ThemeConfig      `yaml:"theme"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield in canvas units.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	GridSize int `yaml:"grid_size"`
}

// SnakeBodyConfig defines the snake's spawn point and input throttle.
type SnakeBodyConfig struct {
	StartCol       int `yaml:"start_col"` // In cells, not canvas units
	StartRow       int `yaml:"start_row"`
	TurnThrottleMs int `yaml:"turn_throttle_ms"` // Minimum gap between a move and an accepted turn
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random samples before falling back to fixed cells
}

// SpeedConfig defines the tick interval ramp.
type SpeedConfig struct {
	InitialMs   int `yaml:"initial_ms"`
	DecrementMs int `yaml:"decrement_ms"` // Subtracted on every food eaten
	MinMs       int `yaml:"min_ms"`
}

// ThemeConfig defines background theming.
type ThemeConfig struct {
	Background  string `yaml:"background"`
	ChangeEvery int    `yaml:"change_every"` // Points between theme changes, 0 disables
}

// RenderConfig defines how the board maps onto the terminal.
type RenderConfig struct {
	PixelSize float64 `yaml:"pixel_size"` // Canvas units per half-block pixel
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`       // Speed up on every food when true
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = start slow, 1.0 = start at max speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the constraints the game relies on.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.GridSize <= 0 {
		return fmt.Errorf("board.grid_size must be positive, got %d", b.GridSize)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", b.Width, b.Height)
	}
	if b.Width%b.GridSize != 0 || b.Height%b.GridSize != 0 {
		return fmt.Errorf("board %dx%d is not divisible by grid_size %d", b.Width, b.Height, b.GridSize)
	}

	cols, rows := b.Width/b.GridSize, b.Height/b.GridSize
	if c.Snake.StartCol < 0 || c.Snake.StartCol >= cols || c.Snake.StartRow < 0 || c.Snake.StartRow >= rows {
		return fmt.Errorf("snake start (%d, %d) is outside the %dx%d grid", c.Snake.StartCol, c.Snake.StartRow, cols, rows)
	}
	if c.Snake.TurnThrottleMs < 0 {
		return fmt.Errorf("snake.turn_throttle_ms must not be negative, got %d", c.Snake.TurnThrottleMs)
	}

	if c.Food.MaxAttempts <= 0 {
		return fmt.Errorf("food.max_attempts must be positive, got %d", c.Food.MaxAttempts)
	}

	s := c.Speed
	if s.MinMs <= 0 || s.InitialMs < s.MinMs {
		return fmt.Errorf("speed needs 0 < min_ms <= initial_ms, got min %d initial %d", s.MinMs, s.InitialMs)
	}
	if s.DecrementMs < 0 {
		return fmt.Errorf("speed.decrement_ms must not be negative, got %d", s.DecrementMs)
	}

	if _, err := core.ParseColor(c.Theme.Background); err != nil {
		return fmt.Errorf("theme.background: %w", err)
	}
	if c.Theme.ChangeEvery < 0 {
		return fmt.Errorf("theme.change_every must not be negative, got %d", c.Theme.ChangeEvery)
	}

	if c.Render.PixelSize <= 0 {
		return fmt.Errorf("render.pixel_size must be positive, got %v", c.Render.PixelSize)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("difficulty.initial_level must be within [0, 1], got %v", c.Difficulty.InitialLevel)
	}
	return nil
}
