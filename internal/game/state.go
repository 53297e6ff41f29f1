// Package game provides the main game loop and state management.
package game

// State represents the current session state.
type State int

const (
	// StatePlaying is the normal running state.
	StatePlaying State = iota
	// StateQuit means the player ended the session.
	StateQuit
	// StateGameOver means the snake ran into itself.
	StateGameOver
	// StateFull means no free cell was left for food.
	StateFull
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateQuit:
		return "quit"
	case StateGameOver:
		return "game_over"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

// Ended reports whether the session is over.
func (s State) Ended() bool {
	return s != StatePlaying
}

// Action is the per-tick input signal.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
