// Package game provides the scene viewer loop and its state.
package game

// State represents the current game state.
type State int

const (
	// StateIdle means the NPC has nowhere to go and the cursor picks a target.
	StateIdle State = iota
	// StateTravelling means the NPC is walking a path as the clock runs.
	StateTravelling
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTravelling:
		return "travelling"
	default:
		return "unknown"
	}
}
