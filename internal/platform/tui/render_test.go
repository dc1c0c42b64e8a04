package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-eater/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "snake")
	s.DrawText(1, 1, "eat")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 1)
	s.DrawTextStyled(0, 0, "red", "#e74c3c", "")
	s.DrawTextStyled(4, 0, "blue", "#3498db", "#000000")

	out := RenderScreen(s)
	for _, want := range []string{"red", "blue"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single row rendered with newlines: %q", out)
	}
}

func TestStyleCacheReuses(t *testing.T) {
	c := styleCache{}
	c.get(cellStyle{fg: "#ffffff"})
	c.get(cellStyle{fg: "#ffffff"})
	c.get(cellStyle{fg: "#ffffff", bg: "#000000"})

	if len(c) != 2 {
		t.Errorf("cache size = %d, want 2", len(c))
	}
}
