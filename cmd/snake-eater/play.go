package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-eater/internal/config"
	"github.com/vovakirdan/snake-eater/internal/core"
	"github.com/vovakirdan/snake-eater/internal/games/snake"
	"github.com/vovakirdan/snake-eater/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start Snake Eater.

Controls:
  Arrows/WASD  - Steer
  Space        - Start or restart
  Mouse        - Click the on-screen pad
  Q/Ctrl+C     - Quit

After a game over, type your name and press Enter to save the score,
or Esc to skip.

Difficulty options:
  easy   - Start at the slowest speed, speed up on every food
  normal - Start at 30% of the speed range
  hard   - Start at 70% of the speed range
  fixed  - Never speed up

Examples:
  snake-eater play
  snake-eater play --difficulty hard
  snake-eater play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.SnakeConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	scores, _, closeScores := openLeaderboard(logger)
	defer closeScores()

	session := core.DefaultConfig()
	session.TickRate = flagFPS
	session.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		session.ScreenW = w
		session.ScreenH = h
	}

	logger.Info("starting", "difficulty", flagDifficulty, "seed", flagSeed, "fps", flagFPS)
	err = tui.Run(tui.Options{
		Settings:  snake.SettingsFromConfig(cfg),
		PixelSize: cfg.Render.PixelSize,
		Runtime:   session,
		Scores:    scores,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
