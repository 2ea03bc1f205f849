// Package game provides the session model and the terminal event loop.
package game

// State represents the current session state.
type State int

const (
	// StateExplore is the normal mode where the player types commands and moves.
	StateExplore State = iota
	// StateQuit means the player asked to leave; the event loop exits.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
