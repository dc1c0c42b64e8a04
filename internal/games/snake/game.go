// Package snake implements the Snake Eater simulation: a snake on a
// wrap-around grid that grows by eating food and speeds up as it scores.
package snake

import (
	"time"

	"github.com/vovakirdan/snake-eater/internal/config"
	"github.com/vovakirdan/snake-eater/internal/core"
)

// Settings are the game's tunables in simulation units.
type Settings struct {
	Grid         Grid
	Start        Cell
	TurnThrottle time.Duration
	FoodAttempts int
	Speed        config.SpeedCurve
	Background   Theme
	ThemeEvery   int // Points between theme changes, 0 disables
}

// SettingsFromConfig converts a loaded configuration.
func SettingsFromConfig(cfg config.SnakeConfig) Settings {
	grid := Grid{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Size:   cfg.Board.GridSize,
	}
	return Settings{
		Grid:         grid,
		Start:        grid.CellAt(cfg.Snake.StartCol, cfg.Snake.StartRow),
		TurnThrottle: time.Duration(cfg.Snake.TurnThrottleMs) * time.Millisecond,
		FoodAttempts: cfg.Food.MaxAttempts,
		Speed:        cfg.SpeedCurve(),
		Background:   Theme(cfg.Theme.Background),
		ThemeEvery:   cfg.Theme.ChangeEvery,
	}
}

// DefaultSettings returns the settings of the default configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultSnakeConfig())
}

// Game is one round of Snake Eater. A finished game stays finished;
// start a new round with New.
type Game struct {
	settings Settings
	clock    core.Clock
	rng      Rand

	snake *Snake
	food  *Food

	score          int
	intervalMs     int
	gameOver       bool
	background     Theme
	lastThemeScore int
	lastTick       time.Time
	ticks          int

	listeners Listeners
	events    []Event
}

// New creates a game with the snake at its start cell and the first food
// placed. The first Update after New always ticks.
func New(settings Settings, clock core.Clock, rng Rand) *Game {
	g := &Game{
		settings:   settings,
		clock:      clock,
		rng:        rng,
		snake:      NewSnake(settings.Grid, settings.Start, clock, settings.TurnThrottle),
		food:       NewFood(settings.Grid, rng, settings.FoodAttempts),
		intervalMs: settings.Speed.StartMs,
		background: settings.Background,
	}
	g.food.Generate(g.snake.body)
	return g
}

// SetListeners replaces the registered event handlers.
func (g *Game) SetListeners(l Listeners) {
	g.listeners = l
}

// ChangeDirection forwards a direction intent to the snake.
func (g *Game) ChangeDirection(d Direction) bool {
	return g.snake.ChangeDirection(d)
}

// Update advances the simulation by one step when the current interval has
// elapsed since the previous step, and returns the events that step raised.
// It is meant to be called every frame; calls inside the interval, and all
// calls once the game is over, do nothing.
func (g *Game) Update() []Event {
	if g.gameOver {
		return nil
	}
	now := g.clock.Now()
	if now.Sub(g.lastTick) <= g.interval() {
		return nil
	}
	g.lastTick = now
	g.ticks++
	g.events = nil

	g.snake.Move()
	g.snake.WrapHead()

	if g.snake.CheckSelfCollision() {
		g.gameOver = true
		g.emit(Event{Kind: EventGameOver})
		return g.events
	}

	if g.snake.Head() == g.food.Position() {
		g.eat()
	}
	return g.events
}

func (g *Game) eat() {
	g.snake.Grow()
	g.food.Generate(g.snake.body)
	g.score++

	prev := g.intervalMs
	g.intervalMs = g.settings.Speed.Next(g.intervalMs)

	if every := g.settings.ThemeEvery; every > 0 && g.score/every > g.lastThemeScore/every {
		g.background = RandomPastel(g.rng)
		g.emit(Event{Kind: EventBackground, Theme: g.background})
	}
	g.lastThemeScore = g.score

	g.emit(Event{Kind: EventScore})
	if g.intervalMs != prev {
		g.emit(Event{Kind: EventSpeed, IntervalMs: g.intervalMs})
	}
}

func (g *Game) emit(e Event) {
	e.Score = g.score
	g.events = append(g.events, e)
	g.listeners.dispatch(e)
}

func (g *Game) interval() time.Duration {
	return time.Duration(g.intervalMs) * time.Millisecond
}

// Score returns the number of foods eaten.
func (g *Game) Score() int {
	return g.score
}

// IntervalMs returns the current tick period in milliseconds.
func (g *Game) IntervalMs() int {
	return g.intervalMs
}

// SpeedPercentage reports how far the interval has ramped, 0 to 100.
func (g *Game) SpeedPercentage() int {
	return g.settings.Speed.Percentage(g.intervalMs)
}

// IsGameOver reports whether the snake has run into itself.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Background returns the current theme.
func (g *Game) Background() Theme {
	return g.background
}

// Snake returns the snake. Callers must not mutate it outside the game.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the pellet's cell.
func (g *Game) Food() Cell {
	return g.food.Position()
}

// Grid returns the playfield geometry.
func (g *Game) Grid() Grid {
	return g.settings.Grid
}

// Ticks returns the number of simulation steps taken.
func (g *Game) Ticks() int {
	return g.ticks
}

// State returns a summary for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		GameOver:   g.gameOver,
		IntervalMs: g.intervalMs,
	}
}
