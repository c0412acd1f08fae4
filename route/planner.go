// Package route ties the pieces together for one route request: it builds a
// grid.Grid from a Scenario, marks obstacles, validates the endpoints, runs
// astar.Search and hands back the annotated board.
//
// The Planner is the place where logging and tracing live; grid and astar
// stay silent unless asked.
package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/grid"
)

// Outcome is the result of planning one Scenario.
type Outcome struct {
	// Grid is the board with obstacles, Start/Goal and, on success, Path cells.
	Grid *grid.Grid
	// Result is the raw search result.
	Result astar.Result
	// Warnings lists obstacles that were dropped (out of range or on an endpoint).
	Warnings []error
}

// Planner runs scenarios. The zero value is ready to use.
type Planner struct {
	// Logger receives Warn records for dropped obstacles and one Info record
	// per plan. Nil means slog.Default().
	Logger *slog.Logger
	// SearchOptions are passed through to astar.Search.
	SearchOptions []astar.Option
}

// tracer follows whatever provider is installed globally; without one it is a no-op.
var tracer = otel.Tracer("lvroute/route")

// NewPlanner returns a Planner logging to logger.
func NewPlanner(logger *slog.Logger, opts ...astar.Option) *Planner {
	return &Planner{Logger: logger, SearchOptions: opts}
}

func (p *Planner) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Build creates the board for s: dimensions, obstacles and Start/Goal.
// Dropped obstacles are logged and returned as warnings; an invalid endpoint
// is an error wrapping grid.ErrInvalidEndpoint.
func (p *Planner) Build(ctx context.Context, s Scenario) (*grid.Grid, []error, error) {
	g, err := grid.New(grid.WithSize(s.Width, s.Height))
	if err != nil {
		return nil, nil, err
	}

	warnings := g.MarkObstacles(s.ObstaclePoints())
	for _, w := range warnings {
		p.logger().WarnContext(ctx, "obstacle ignored", slog.String("reason", w.Error()))
	}

	start, goal := s.Start.Point(), s.Goal.Point()
	if err := g.SetStart(start.X, start.Y); err != nil {
		return nil, warnings, fmt.Errorf("route: start: %w", err)
	}
	if err := g.SetGoal(goal.X, goal.Y); err != nil {
		return nil, warnings, fmt.Errorf("route: goal: %w", err)
	}

	return g, warnings, nil
}

// Plan builds the board for s and searches it. A missing route is reported
// through Outcome.Result.Found, not as an error.
func (p *Planner) Plan(ctx context.Context, s Scenario) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "route.Planner.Plan",
		trace.WithAttributes(
			attribute.Int("width", s.Width),
			attribute.Int("height", s.Height),
			attribute.Int("obstacles", len(s.ObstaclePoints())),
		),
	)
	defer span.End()

	g, warnings, err := p.Build(ctx, s)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return Outcome{Warnings: warnings}, err
	}

	return p.search(ctx, span, g, warnings)
}

// Search runs astar.Search on an already built board whose Start and Goal are
// set. Path cells left by an earlier search are cleared first.
func (p *Planner) Search(ctx context.Context, g *grid.Grid) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "route.Planner.Search")
	defer span.End()

	return p.search(ctx, span, g, nil)
}

func (p *Planner) search(ctx context.Context, span trace.Span, g *grid.Grid, warnings []error) (Outcome, error) {
	out := Outcome{Grid: g, Warnings: warnings}
	if g == nil {
		span.SetStatus(codes.Error, "nil grid")
		return out, astar.ErrNilGrid
	}
	start, okS := g.StartPoint()
	goal, okG := g.GoalPoint()
	if !okS || !okG {
		err := fmt.Errorf("%w: start and goal must be set", grid.ErrInvalidEndpoint)
		span.RecordError(err)
		span.SetStatus(codes.Error, "endpoints missing")
		return out, err
	}

	// A board searched before still carries the old route.
	g.ClearPath()

	opts := append([]astar.Option{astar.WithLogger(p.logger())}, p.SearchOptions...)
	res, err := astar.Search(g, start, goal, opts...)
	out.Result = res
	span.SetAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int("length", res.Length),
		attribute.Int("expanded", res.Expanded),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		level := slog.LevelError
		if errors.Is(err, astar.ErrExpansionBudget) {
			level = slog.LevelWarn
		}
		p.logger().Log(ctx, level, "route search aborted", slog.String("error", err.Error()))
		return out, err
	}

	p.logger().InfoContext(ctx, "route planned",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Bool("found", res.Found),
		slog.Int("length", res.Length),
	)
	span.SetStatus(codes.Ok, "")
	return out, nil
}
