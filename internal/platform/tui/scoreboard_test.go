package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-eater/internal/core"
	"github.com/vovakirdan/snake-eater/internal/leaderboard"
)

func newTestLeaderboard(t *testing.T) *leaderboard.Leaderboard {
	t.Helper()
	clock := core.NewManualClock(testEpoch)
	lb := leaderboard.New(leaderboard.NewMemoryStore(), clock, nil)
	lb.Add("Ada", 30)
	clock.Advance(time.Minute)
	lb.Add("Linus", 50)
	return lb
}

func TestScoreRows(t *testing.T) {
	lb := newTestLeaderboard(t)
	rows := ScoreRows(lb.Entries())

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "Linus" || rows[0][2] != "50" {
		t.Errorf("first row = %v, want #1 Linus 50", rows[0])
	}
	if rows[1][0] != "#2" || rows[1][1] != "Ada" {
		t.Errorf("second row = %v, want #2 Ada", rows[1])
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("not a date"); got != "not a date" {
		t.Errorf("formatDate(invalid) = %q, want input unchanged", got)
	}

	date := testEpoch.Format("2006-01-02T15:04:05.000Z")
	want := testEpoch.Local().Format(dateColumnFmt)
	if got := formatDate(date); got != want {
		t.Errorf("formatDate(%q) = %q, want %q", date, got, want)
	}
}

func TestPlainScores(t *testing.T) {
	if got := PlainScores(nil); got != "No scores yet.\n" {
		t.Errorf("PlainScores(nil) = %q", got)
	}

	out := PlainScores(newTestLeaderboard(t).Entries())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header plus 2", len(lines))
	}
	if !strings.HasPrefix(lines[1], "#1") || !strings.Contains(lines[1], "Linus") {
		t.Errorf("first line = %q, want rank 1 Linus", lines[1])
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(newTestLeaderboard(t), 80)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel(newTestLeaderboard(t), 80)
	out := m.View()

	for _, want := range []string{"HIGH SCORES", "Linus", "Ada"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := NewScoreboardModel(leaderboard.New(leaderboard.NewMemoryStore(), core.NewManualClock(testEpoch), nil), 80)
	if !strings.Contains(empty.View(), "No scores yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}
