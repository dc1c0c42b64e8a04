package tui

import (
	"time"

	"github.com/vovakirdan/snake-eater/internal/core"
	"github.com/vovakirdan/snake-eater/internal/games/snake"
)

const (
	milestoneEvery    = 10
	milestoneDuration = 2 * time.Second
	flashDuration     = 300 * time.Millisecond
	speedBarWidth     = 12
)

// HUD and panel colors.
const (
	speedGreen  = "#2ecc71"
	speedOrange = "#f39c12"
	speedRed    = "#e74c3c"
	accentColor = "#f1c40f"
	mutedColor  = "#7f8c8d"
	textColor   = "#ecf0f1"
	titleColor  = "#3498db"
	overlayText = "#ffffff"
	frameColor  = "#34495e"
	flashColor  = "#ffffff"
)

var overlayDim = core.MustParseColor("rgba(0, 0, 0, 0.7)")

// SpeedColor returns the speed bar color for a 0..100 speed percentage.
func SpeedColor(pct int) string {
	switch {
	case pct < 33:
		return speedGreen
	case pct < 66:
		return speedOrange
	default:
		return speedRed
	}
}

// speedBarFill returns how many of width cells a percentage fills.
func speedBarFill(pct, width int) int {
	return core.Clamp(pct*width/100, 0, width)
}

// effects tracks the short-lived HUD highlights raised by game events.
type effects struct {
	milestone       int
	milestoneUntil  time.Time
	speedFlashUntil time.Time
	bgFlashUntil    time.Time
}

func (e *effects) apply(ev snake.Event, now time.Time) {
	switch ev.Kind {
	case snake.EventScore:
		if ev.Score > 0 && ev.Score%milestoneEvery == 0 {
			e.milestone = ev.Score
			e.milestoneUntil = now.Add(milestoneDuration)
		}
	case snake.EventSpeed:
		e.speedFlashUntil = now.Add(flashDuration)
	case snake.EventBackground:
		e.bgFlashUntil = now.Add(flashDuration)
	}
}

func (e effects) showMilestone(now time.Time) bool {
	return now.Before(e.milestoneUntil)
}

func (e effects) speedFlash(now time.Time) bool {
	return now.Before(e.speedFlashUntil)
}

func (e effects) backgroundFlash(now time.Time) bool {
	return now.Before(e.bgFlashUntil)
}

// lighten blends a hex color halfway to white.
func lighten(hex string) string {
	c := core.MustParseColor(hex)
	white := core.MustParseColor("white")
	return core.Opaque(c.C.BlendRgb(white.C, 0.5)).Hex()
}
