package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/snake-eater/internal/games/snake"
)

func TestSpeedColor(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{0, speedGreen},
		{32, speedGreen},
		{33, speedOrange},
		{65, speedOrange},
		{66, speedRed},
		{100, speedRed},
	}

	for _, tt := range tests {
		if got := SpeedColor(tt.pct); got != tt.want {
			t.Errorf("SpeedColor(%d) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestSpeedBarFill(t *testing.T) {
	tests := []struct {
		pct, width, want int
	}{
		{0, 12, 0},
		{50, 12, 6},
		{100, 12, 12},
		{150, 12, 12},
		{-5, 12, 0},
	}

	for _, tt := range tests {
		if got := speedBarFill(tt.pct, tt.width); got != tt.want {
			t.Errorf("speedBarFill(%d, %d) = %d, want %d", tt.pct, tt.width, got, tt.want)
		}
	}
}

func TestEffectsMilestone(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var fx effects

	fx.apply(snake.Event{Kind: snake.EventScore, Score: 9}, now)
	if fx.showMilestone(now) {
		t.Error("score 9 should not be a milestone")
	}

	fx.apply(snake.Event{Kind: snake.EventScore, Score: 10}, now)
	if !fx.showMilestone(now.Add(time.Second)) {
		t.Error("milestone should show for two seconds")
	}
	if fx.milestone != 10 {
		t.Errorf("milestone = %d, want 10", fx.milestone)
	}
	if fx.showMilestone(now.Add(milestoneDuration)) {
		t.Error("milestone should be hidden after two seconds")
	}
}

func TestEffectsFlashes(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var fx effects

	fx.apply(snake.Event{Kind: snake.EventSpeed, IntervalMs: 147}, now)
	if !fx.speedFlash(now.Add(100 * time.Millisecond)) {
		t.Error("speed flash should be active")
	}
	if fx.backgroundFlash(now) {
		t.Error("speed event should not flash the background")
	}

	fx.apply(snake.Event{Kind: snake.EventBackground, Theme: "hsl(10, 70%, 80%)"}, now)
	if !fx.backgroundFlash(now.Add(299 * time.Millisecond)) {
		t.Error("background flash should be active")
	}
	if fx.backgroundFlash(now.Add(flashDuration)) {
		t.Error("background flash should end after 300ms")
	}
}

func TestLighten(t *testing.T) {
	if got := lighten("#000000"); got != "#808080" {
		t.Errorf("lighten(black) = %s, want #808080", got)
	}
	if got := lighten("#ffffff"); got != "#ffffff" {
		t.Errorf("lighten(white) = %s, want #ffffff", got)
	}
}
