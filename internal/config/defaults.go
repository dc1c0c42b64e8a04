package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration: a 400x400 board of
// 20 unit cells, the snake spawning at cell (5, 5), and a 150ms tick that
// speeds up by 3ms per food down to 40ms.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    400,
			Height:   400,
			GridSize: 20,
		},
		Snake: SnakeBodyConfig{
			StartCol:       5,
			StartRow:       5,
			TurnThrottleMs: 50,
		},
		Food: FoodConfig{
			MaxAttempts: 100,
		},
		Speed: SpeedConfig{
			InitialMs:   150,
			DecrementMs: 3,
			MinMs:       40,
		},
		Theme: ThemeConfig{
			Background:  "#ecf0f1",
			ChangeEvery: 10,
		},
		Render: RenderConfig{
			PixelSize: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
