package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-eater/internal/core"
)

// cellStyle is the color pair of a run of cells.
type cellStyle struct {
	fg, bg string
}

// styleCache maps color pairs to lipgloss styles.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(cs cellStyle) lipgloss.Style {
	if s, ok := c[cs]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if cs.fg != "" {
		s = s.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != "" {
		s = s.Background(lipgloss.Color(cs.bg))
	}
	c[cs] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
