package pathfind

import "errors"

var (
	// ErrSceneNotConfigured indicates the provider has no grid for the requested scene.
	ErrSceneNotConfigured = errors.New("pathfind: no grid data for scene")
	// ErrOutsideGrid indicates a start or goal coordinate outside the scene grid.
	ErrOutsideGrid = errors.New("pathfind: coordinate outside scene grid")
	// ErrUnreachable indicates the open set was exhausted before reaching the goal.
	ErrUnreachable = errors.New("pathfind: goal unreachable")
	// ErrInvalidPenalty indicates a movement penalty outside [MinMovementPenalty, MaxMovementPenalty].
	ErrInvalidPenalty = errors.New("pathfind: movement penalty out of range")
)
