package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The platform maps keys, mouse presses and touch-like events to
// actions; game logic only ever sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space, Up, W, mouse press - flap / start session
	ActionRestart        // R - restart after game over
	ActionBack           // Esc, B - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
