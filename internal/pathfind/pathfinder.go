package pathfind

import (
	"fmt"

	"github.com/samdwyer/farmstead/internal/world"
)

const (
	MinMovementPenalty = 0
	MaxMovementPenalty = 20
)

// GridCostProvider supplies per-scene grid dimensions and cell properties.
type GridCostProvider interface {
	// GridDimensions returns the size and origin of the scene grid.
	GridDimensions(scene world.SceneName) (world.GridDimensions, bool)
	// CellDetails returns the properties of the cell at a global coordinate.
	CellDetails(scene world.SceneName, x, y int) (world.GridPropertyDetails, bool)
}

// Options configures how terrain affects path cost.
type Options struct {
	// ObserveMovementPenalties adds each entered cell's penalty to the path cost.
	ObserveMovementPenalties bool
	// PathMovementPenalty is the penalty of cells marked as path.
	PathMovementPenalty int
	// DefaultMovementPenalty is the penalty of every other walkable cell.
	DefaultMovementPenalty int
}

// DefaultOptions returns Options with penalties observed, path cells costing 1
// and plain cells costing nothing extra.
func DefaultOptions() Options {
	return Options{
		ObserveMovementPenalties: true,
		PathMovementPenalty:      1,
		DefaultMovementPenalty:   0,
	}
}

// Validate checks that both penalties are within range.
func (o Options) Validate() error {
	if o.PathMovementPenalty < MinMovementPenalty || o.PathMovementPenalty > MaxMovementPenalty {
		return fmt.Errorf("%w: path penalty %d", ErrInvalidPenalty, o.PathMovementPenalty)
	}
	if o.DefaultMovementPenalty < MinMovementPenalty || o.DefaultMovementPenalty > MaxMovementPenalty {
		return fmt.Errorf("%w: default penalty %d", ErrInvalidPenalty, o.DefaultMovementPenalty)
	}
	return nil
}

// Path is a found route, ready to be consumed step by step.
type Path struct {
	Scene    world.SceneName
	Steps    *StepStack
	Cost     int // Accumulated cost at the goal
	Expanded int // Nodes expanded by the search
}

// PathFinder builds NPC routes over scene grids.
type PathFinder struct {
	provider GridCostProvider
	opts     Options
}

// New creates a PathFinder reading grid data from provider.
func New(provider GridCostProvider, opts Options) (*PathFinder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &PathFinder{
		provider: provider,
		opts:     opts,
	}, nil
}

// Options returns the finder's configuration.
func (f *PathFinder) Options() Options {
	return f.opts
}

// BuildPath finds a route between two global coordinates of a scene and
// returns it as a stack whose top is the start cell.
func (f *PathFinder) BuildPath(scene world.SceneName, start, goal world.GridCoordinate) (*StepStack, error) {
	path, err := f.BuildPathResult(scene, start, goal)
	if err != nil {
		return nil, err
	}
	return path.Steps, nil
}

// BuildPathResult is BuildPath with the route's cost and search statistics.
func (f *PathFinder) BuildPathResult(scene world.SceneName, start, goal world.GridCoordinate) (*Path, error) {
	grid, dims, err := BuildNodeGrid(f.provider, scene, f.opts)
	if err != nil {
		return nil, err
	}

	if !dims.Contains(start) {
		return nil, fmt.Errorf("%w: start %v in %s", ErrOutsideGrid, start, scene)
	}
	if !dims.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %v in %s", ErrOutsideGrid, goal, scene)
	}

	sx, sy := dims.Local(start)
	gx, gy := dims.Local(goal)
	result, ok := FindPath(grid, sx, sy, gx, gy, f.opts.ObserveMovementPenalties)
	if !ok {
		return &Path{Scene: scene, Expanded: result.Expanded},
			fmt.Errorf("%w: %v to %v in %s", ErrUnreachable, start, goal, scene)
	}

	steps := &StepStack{}
	pushPath(steps, grid, result.Goal, scene, dims)

	return &Path{
		Scene:    scene,
		Steps:    steps,
		Cost:     result.Goal.GCost,
		Expanded: result.Expanded,
	}, nil
}
