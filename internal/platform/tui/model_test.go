package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-eater/internal/core"
	"github.com/vovakirdan/snake-eater/internal/games/snake"
	"github.com/vovakirdan/snake-eater/internal/leaderboard"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(testEpoch)
	m := NewModel(Options{
		Settings:  snake.DefaultSettings(),
		PixelSize: 10,
		Runtime:   core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 42},
		Clock:     clock,
	})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelStartsReady(t *testing.T) {
	m, clock := newTestModel(t)

	if m.phase != phaseReady {
		t.Fatalf("phase = %v, want ready", m.phase)
	}

	clock.Advance(time.Second)
	m, _ = update(t, m, TickMsg(clock.Now()))
	if m.game.Ticks() != 0 {
		t.Errorf("game ticked %d times before start", m.game.Ticks())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.game.Snake().NextDirection(); got != snake.DirRight {
		t.Errorf("direction changed before start: %v", got)
	}
}

func TestModelSpaceStartsRound(t *testing.T) {
	m, clock := newTestModel(t)

	m, _ = update(t, m, spaceKey)
	if m.phase != phasePlaying {
		t.Fatalf("phase = %v, want playing", m.phase)
	}
	if m.rounds != 1 {
		t.Errorf("rounds = %d, want 1", m.rounds)
	}

	head := m.game.Snake().Head()
	m, cmd := update(t, m, TickMsg(clock.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
	if m.game.Ticks() != 1 {
		t.Fatalf("ticks = %d, want 1", m.game.Ticks())
	}
	want := m.game.Grid().Step(head, snake.DirRight)
	if got := m.game.Snake().Head(); got != want {
		t.Errorf("head = %+v, want %+v", got, want)
	}

	// Space while playing does not restart.
	game := m.game
	m, _ = update(t, m, spaceKey)
	if m.game != game || m.rounds != 1 {
		t.Error("space restarted a running round")
	}
}

func TestModelDirectionKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, spaceKey)

	m, _ = update(t, m, runeKey('s'))
	if got := m.game.Snake().NextDirection(); got != snake.DirDown {
		t.Errorf("next direction = %v, want down", got)
	}
}

func TestModelMouseDpad(t *testing.T) {
	m, clock := newTestModel(t)

	var up, start button
	for _, b := range m.layout.buttons {
		switch b.action {
		case core.ActionUp:
			up = b
		case core.ActionStart:
			start = b
		}
	}

	click := func(b button) tea.MouseMsg {
		return tea.MouseMsg{X: b.rect.X + 1, Y: b.rect.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m, _ = update(t, m, click(start))
	if m.phase != phasePlaying {
		t.Fatalf("start button: phase = %v, want playing", m.phase)
	}

	clock.Advance(time.Second)
	m, _ = update(t, m, click(up))
	if got := m.game.Snake().NextDirection(); got != snake.DirUp {
		t.Errorf("up button: next direction = %v, want up", got)
	}

	release := tea.MouseMsg{X: up.rect.X, Y: up.rect.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, release)
	if m.phase != phasePlaying {
		t.Error("mouse release changed the phase")
	}
}

func TestModelGameOverOpensNameEntry(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, spaceKey)

	if cmd := m.endRound(m.game.Score()); cmd == nil {
		t.Error("name entry should start the cursor blink")
	}
	if m.phase != phaseGameOver || !m.naming {
		t.Fatalf("phase = %v naming = %v, want game over with name entry", m.phase, m.naming)
	}

	// Keys bound to the game are typed into the name.
	for _, r := range "Ada q" {
		m, _ = update(t, m, runeKey(r))
	}
	if m.quitting {
		t.Fatal("q quit while typing a name")
	}
	if m.phase != phaseGameOver {
		t.Fatal("typing restarted the game")
	}
	if got := m.input.Value(); got != "Ada q" {
		t.Errorf("name = %q, want %q", got, "Ada q")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.naming {
		t.Error("name entry still open after enter")
	}

	entries := m.scores.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Name != "Ada q" {
		t.Errorf("saved name = %q, want %q", entries[0].Name, "Ada q")
	}
	if entries[0].ID != m.scores.LastAddedID() {
		t.Error("saved entry is not the newest")
	}

	m, _ = update(t, m, spaceKey)
	if m.phase != phasePlaying || m.rounds != 2 {
		t.Errorf("space after game over: phase = %v rounds = %d, want playing round 2", m.phase, m.rounds)
	}
}

func TestModelSkipNameEntry(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	m.endRound(0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.naming {
		t.Error("name entry still open after esc")
	}
	if n := len(m.scores.Entries()); n != 0 {
		t.Errorf("entries = %d, want 0", n)
	}
}

func TestModelEmptyNameSavesDefault(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	m.endRound(0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	entries := m.scores.Entries()
	if len(entries) != 1 || entries[0].Name != leaderboard.DefaultName {
		t.Errorf("entries = %+v, want one %q", entries, leaderboard.DefaultName)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	for _, want := range []string{"LEADERBOARD", "Score: 0", "No scores yet"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})

	if out := m.View(); !strings.Contains(out, "Terminal too small") {
		t.Errorf("view = %q, want size warning", out)
	}
}

func TestModelViewGameOverShowsScore(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	m.endRound(0)
	m.closeNameEntry()

	if !strings.Contains(m.screenText(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

// screenText renders the view and returns the plain screen content.
func (m Model) screenText() string {
	m.View()
	return m.screen.String()
}
