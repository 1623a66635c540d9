package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - steer up
	ActionDown         // S, Down arrow - steer down
	ActionLeft         // A, Left arrow - steer left
	ActionRight        // D, Right arrow - steer right
	ActionStart        // Enter - start a new session
	ActionPause        // Space, P - pause/resume
	ActionReset        // R - reset to a fresh board
	ActionScreenshot   // Ctrl+S - dump the board to a file
	ActionBack         // Esc, B - leave the game for the menu
	ActionQuit         // Q, Ctrl+C - exit
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
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionScreenshot:
		return "Screenshot"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a steering action to its grid direction.
// The second result is false for non-steering actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirRight, false
}
