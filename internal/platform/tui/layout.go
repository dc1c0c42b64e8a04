package tui

import (
	"github.com/vovakirdan/snake-eater/internal/core"
)

// Layout constants, in terminal cells.
const (
	panelGap    = 3  // Columns between the board frame and the side panel
	panelWidth  = 26 // Side panel width
	panelTop    = 1  // Row of the leaderboard title
	dpadTop     = 15 // Row of the up button
	hudHeight   = 1
	buttonWidth = 5
)

// button is a clickable screen region.
type button struct {
	label  string
	rect   core.Rect
	action core.Action
}

// layout positions every screen element for a board of a given size.
type layout struct {
	frame   core.Rect // Board border
	board   core.Rect // Blit target for the raster
	panelX  int
	buttons []button
	width   int
	height  int
}

func newLayout(boardW, boardH int) layout {
	frame := core.NewRect(0, hudHeight, boardW+2, boardH+2)
	l := layout{
		frame: frame,
		board: frame.Inset(1),
	}
	l.panelX = l.frame.Right() + panelGap

	// D-pad: up on top, left and right beside the gap, down below.
	cx := l.panelX + buttonWidth + 1
	l.buttons = []button{
		{"[ ▲ ]", core.NewRect(cx, dpadTop, buttonWidth, 1), core.ActionUp},
		{"[ ◀ ]", core.NewRect(l.panelX, dpadTop+1, buttonWidth, 1), core.ActionLeft},
		{"[ ▶ ]", core.NewRect(cx+buttonWidth+1, dpadTop+1, buttonWidth, 1), core.ActionRight},
		{"[ ▼ ]", core.NewRect(cx, dpadTop+2, buttonWidth, 1), core.ActionDown},
		{"[ Start ]", core.NewRect(l.panelX+2, dpadTop+4, 9, 1), core.ActionStart},
	}

	l.width = l.panelX + panelWidth
	l.height = max(l.frame.Bottom(), dpadTop+5)
	return l
}

// hit returns the action of the button at (x, y), ActionNone if none.
func (l layout) hit(x, y int) core.Action {
	for _, b := range l.buttons {
		if b.rect.Contains(x, y) {
			return b.action
		}
	}
	return core.ActionNone
}
