package npc

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/farmstead/internal/pathfind"
	"github.com/samdwyer/farmstead/internal/telemetry"
	"github.com/samdwyer/farmstead/internal/world"
)

// Builder finds routes between two cells of a scene.
type Builder interface {
	BuildPath(ctx context.Context, scene world.SceneName, start, goal world.GridCoordinate) (*pathfind.StepStack, error)
}

// Navigator is the Builder the game uses: a PathFinder with tracing,
// metrics and logging around every request.
type Navigator struct {
	finder   *pathfind.PathFinder
	logger   logr.Logger
	tracer   trace.Tracer
	builds   metric.Int64Counter
	expanded metric.Int64Histogram
}

// NewNavigator wraps finder.
func NewNavigator(finder *pathfind.PathFinder, logger logr.Logger) (*Navigator, error) {
	meter := telemetry.Meter("npc")

	builds, err := meter.Int64Counter("npc.path.builds",
		metric.WithDescription("Path build requests, by scene and outcome"))
	if err != nil {
		return nil, err
	}
	expanded, err := meter.Int64Histogram("npc.path.expanded_nodes",
		metric.WithDescription("Nodes expanded per path search"),
		metric.WithUnit("{node}"))
	if err != nil {
		return nil, err
	}

	return &Navigator{
		finder:   finder,
		logger:   logger.WithName("navigator"),
		tracer:   telemetry.Tracer("npc"),
		builds:   builds,
		expanded: expanded,
	}, nil
}

// BuildPath finds a route and records how the search went.
func (n *Navigator) BuildPath(ctx context.Context, scene world.SceneName, start, goal world.GridCoordinate) (*pathfind.StepStack, error) {
	ctx, span := n.tracer.Start(ctx, "npc.build_path", trace.WithAttributes(
		attribute.String("scene", scene.String()),
		attribute.String("path.start", start.String()),
		attribute.String("path.goal", goal.String()),
	))
	defer span.End()

	path, err := n.finder.BuildPathResult(scene, start, goal)

	outcome := outcomeOf(err)
	attrs := metric.WithAttributes(
		attribute.String("scene", scene.String()),
		attribute.String("outcome", outcome),
	)
	n.builds.Add(ctx, 1, attrs)
	if path != nil {
		n.expanded.Record(ctx, int64(path.Expanded), attrs)
		span.SetAttributes(attribute.Int("path.expanded_nodes", path.Expanded))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		n.logger.V(1).Info("no path", "scene", scene, "from", start, "to", goal, "error", err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("path.steps", path.Steps.Len()),
		attribute.Int("path.cost", path.Cost),
	)
	n.logger.V(2).Info("path built", "scene", scene, "from", start, "to", goal,
		"steps", path.Steps.Len(), "cost", path.Cost, "expanded", path.Expanded)
	return path.Steps, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, pathfind.ErrUnreachable):
		return "unreachable"
	case errors.Is(err, pathfind.ErrSceneNotConfigured):
		return "scene_not_configured"
	case errors.Is(err, pathfind.ErrOutsideGrid):
		return "outside_grid"
	default:
		return "error"
	}
}
