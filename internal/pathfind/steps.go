package pathfind

import (
	"time"

	"github.com/samdwyer/farmstead/internal/world"
)

// MovementStep is one cell of an NPC route, in global scene coordinates.
// Hour, Minute and Second are the game-clock arrival time once a timing
// pass has run; they are zero before that.
type MovementStep struct {
	Scene          world.SceneName
	GridCoordinate world.GridCoordinate
	Cost           int // Accumulated search cost on arrival at this cell
	Hour           int
	Minute         int
	Second         int
}

// Time returns the step's arrival time as an offset from midnight.
func (s MovementStep) Time() time.Duration {
	return time.Duration(s.Hour)*time.Hour +
		time.Duration(s.Minute)*time.Minute +
		time.Duration(s.Second)*time.Second
}

// SetTime stores a time of day on the step. Whole days are discarded.
func (s *MovementStep) SetTime(t time.Duration) {
	t %= 24 * time.Hour
	if t < 0 {
		t += 24 * time.Hour
	}
	s.Hour = int(t / time.Hour)
	s.Minute = int(t % time.Hour / time.Minute)
	s.Second = int(t % time.Minute / time.Second)
}

// StepStack is a LIFO of movement steps. After BuildPath the top is the
// start cell and the bottom is the destination.
type StepStack struct {
	steps []MovementStep
}

// Push adds a step on top of the stack.
func (s *StepStack) Push(step MovementStep) {
	s.steps = append(s.steps, step)
}

// Pop removes and returns the top step.
func (s *StepStack) Pop() (MovementStep, bool) {
	if len(s.steps) == 0 {
		return MovementStep{}, false
	}
	last := len(s.steps) - 1
	step := s.steps[last]
	s.steps = s.steps[:last]
	return step, true
}

// Peek returns the top step without removing it.
func (s *StepStack) Peek() (MovementStep, bool) {
	if len(s.steps) == 0 {
		return MovementStep{}, false
	}
	return s.steps[len(s.steps)-1], true
}

// Len returns the number of steps left.
func (s *StepStack) Len() int {
	return len(s.steps)
}

// Clear drops every step.
func (s *StepStack) Clear() {
	s.steps = s.steps[:0]
}

// Steps returns a copy of the steps in pop order (top first).
func (s *StepStack) Steps() []MovementStep {
	out := make([]MovementStep, len(s.steps))
	for i := range s.steps {
		out[i] = s.steps[len(s.steps)-1-i]
	}
	return out
}

// Each calls fn with a pointer to every step in pop order, so callers can
// annotate steps in place. Iteration stops when fn returns false.
func (s *StepStack) Each(fn func(step *MovementStep) bool) {
	for i := len(s.steps) - 1; i >= 0; i-- {
		if !fn(&s.steps[i]) {
			return
		}
	}
}

// pushPath walks the parent chain from goal to the start, converting each
// node back to global coordinates and pushing it. The start ends up on top.
func pushPath(stack *StepStack, grid *NodeGrid, goal *Node, scene world.SceneName, dims world.GridDimensions) {
	for n := goal; n != nil; n = grid.Parent(n) {
		stack.Push(MovementStep{
			Scene:          scene,
			GridCoordinate: dims.Global(n.X, n.Y),
			Cost:           n.GCost,
		})
	}
}
