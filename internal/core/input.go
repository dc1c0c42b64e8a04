package core

// Action represents a semantic game action, abstracted from physical key presses
// and clicks. The platform maps raw input to actions; games only see intents.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, up button
	ActionDown           // S, Down arrow, down button
	ActionLeft           // A, Left arrow, left button
	ActionRight          // D, Right arrow, right button
	ActionStart          // Space - start or restart a game
	ActionConfirm        // Enter - confirm name entry
	ActionBack           // Esc - skip name entry / leave scoreboard
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement intents.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
