package npc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/farmstead/internal/entity"
	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/telemetry"
)

// ErrCrossScene indicates a schedule event in a scene other than the NPC's.
var ErrCrossScene = errors.New("npc: destination is in another scene")

// Path holds the remaining movement steps of one NPC.
type Path struct {
	npc      *entity.NPC
	builder  Builder
	settings Settings
	steps    *pathfind.StepStack
	event    *ScheduleEvent
}

// NewPath creates an empty path for an NPC.
func NewPath(n *entity.NPC, builder Builder, settings Settings) *Path {
	return &Path{
		npc:      n,
		builder:  builder,
		settings: settings,
		steps:    &pathfind.StepStack{},
	}
}

// Steps returns the steps still to walk, next step on top.
func (p *Path) Steps() *pathfind.StepStack {
	return p.steps
}

// Event returns the schedule event the path leads to, or nil.
func (p *Path) Event() *ScheduleEvent {
	return p.event
}

// ClearPath drops every remaining step.
func (p *Path) ClearPath() {
	p.steps.Clear()
	p.event = nil
}

// BuildPath replaces the current path with a route to the event's
// destination, timed from now. The NPC's own cell is not part of the result.
func (p *Path) BuildPath(ctx context.Context, event ScheduleEvent, now time.Duration) error {
	ctx, span := telemetry.Tracer("npc").Start(ctx, "npc.travel")
	defer span.End()
	span.SetAttributes(
		attribute.String("npc.id", p.npc.ID),
		attribute.String("npc.name", p.npc.Name),
		attribute.String("travel.scene", event.ToScene.String()),
	)

	p.ClearPath()

	fail := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, "travel not planned")
		return err
	}

	if event.ToScene != p.npc.Scene {
		return fail(fmt.Errorf("%w: %s is in %s, event is in %s", ErrCrossScene, p.npc.Name, p.npc.Scene, event.ToScene))
	}

	steps, err := p.builder.BuildPath(ctx, event.ToScene, p.npc.Position, event.ToGridCoordinate)
	if err != nil {
		return fail(err)
	}

	if steps.Len() > 1 {
		UpdateTimesOnPath(steps, now, p.npc.Speed, p.settings)
		steps.Pop()
		p.steps = steps
	}
	p.event = &event

	span.SetAttributes(attribute.Int("travel.steps", p.steps.Len()))
	return nil
}
