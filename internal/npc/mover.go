package npc

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/samdwyer/farmstead/internal/entity"
	"github.com/samdwyer/farmstead/internal/pathfind"
)

// Mover walks an NPC along its Path as game time passes.
type Mover struct {
	npc    *entity.NPC
	path   *Path
	logger logr.Logger
}

// NewMover creates a mover for the NPC that owns path.
func NewMover(path *Path, logger logr.Logger) *Mover {
	return &Mover{
		npc:    path.npc,
		path:   path,
		logger: logger.WithName("mover").WithValues("npc", path.npc.Name),
	}
}

// Advance moves the NPC onto every step whose arrival time has been reached
// and returns how many steps were taken.
func (m *Mover) Advance(now time.Duration) int {
	moved := 0
	steps := m.path.Steps()
	for {
		step, ok := steps.Peek()
		if !ok || !due(step, now) {
			break
		}
		steps.Pop()
		m.npc.MoveTo(step.Scene, step.GridCoordinate)
		moved++
	}

	if moved > 0 {
		m.logger.V(3).Info("moved", "steps", moved, "position", m.npc.Position)
		if steps.Len() == 0 && m.path.Event() != nil {
			m.logger.V(1).Info("arrived", "scene", m.npc.Scene, "position", m.npc.Position)
		}
	}
	return moved
}

// Arrived reports whether the NPC has no steps left to walk.
func (m *Mover) Arrived() bool {
	return m.path.Steps().Len() == 0
}

// due reports whether now is at or past the step's arrival time. Times are
// clock times, so a step counts as due when it lies less than twelve hours
// behind now, allowing paths that run across midnight.
func due(step pathfind.MovementStep, now time.Duration) bool {
	behind := ((now-step.Time())%day + day) % day
	return behind < day/2
}
