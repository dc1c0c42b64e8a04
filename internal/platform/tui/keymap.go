package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-eater/internal/core"
	"github.com/vovakirdan/snake-eater/internal/games/snake"
)

// GameKeyMap defines the key bindings while playing.
type GameKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NameEntryKeyMap defines the key bindings of the name entry modal.
type NameEntryKeyMap struct {
	Save key.Binding
	Skip key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k NameEntryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Skip}
}

// FullHelp returns key bindings for the full help view.
func (k NameEntryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Skip, k.Quit}}
}

// DefaultNameEntryKeyMap returns default key bindings. Letters are typed
// into the name, so only ctrl+c quits.
func DefaultNameEntryKeyMap() NameEntryKeyMap {
	return NameEntryKeyMap{
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save score"),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	game GameKeyMap
	name NameEntryKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: DefaultGameKeyMap(),
		name: DefaultNameEntryKeyMap(),
	}
}

// MapKey translates a key message to a game action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.game.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.game.Up):
		return core.ActionUp
	case key.Matches(msg, km.game.Down):
		return core.ActionDown
	case key.Matches(msg, km.game.Left):
		return core.ActionLeft
	case key.Matches(msg, km.game.Right):
		return core.ActionRight
	case key.Matches(msg, km.game.Start):
		return core.ActionStart
	}
	return core.ActionNone
}

// MapNameEntryKey translates a key pressed in the name entry modal.
// ActionNone means the key belongs to the text input.
func (km *KeyMapper) MapNameEntryKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.name.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.name.Save):
		return core.ActionConfirm
	case key.Matches(msg, km.name.Skip):
		return core.ActionBack
	}
	return core.ActionNone
}

// DirectionFor converts a movement action to a snake direction.
func DirectionFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.DirUp, true
	case core.ActionDown:
		return snake.DirDown, true
	case core.ActionLeft:
		return snake.DirLeft, true
	case core.ActionRight:
		return snake.DirRight, true
	}
	return snake.DirRight, false
}
