// Package astar implements A* shortest-route search on a grid.Grid with
// 4-directional unit-cost moves and the Manhattan heuristic.
//
// The search keeps three structures per run:
//
//   - a node pool that owns every generated node; predecessor links are handles,
//   - a frontier (min-heap keyed by f = g + h) holding handles only,
//   - a visited set of finalized cells keyed by y*W + x.
//
// Because every move costs 1 and Manhattan distance is consistent, the first
// time the goal is popped its g is minimal; closed cells are never re-opened.
// Duplicate frontier entries are tolerated and discarded lazily when popped.
package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvroute/grid"
)

// Search finds a shortest 4-directional route from start to goal on g,
// avoiding Blocked cells. It accepts functional options to customize
// behavior (WithMaxExpansions, WithOnPush, WithOnExpand, WithLogger, ...).
//
// Returns:
//
//   - Result with Found == true, Path from start to goal inclusive and
//     Length == len(Path)-1 when a route exists. Unless WithoutMarking is
//     given, the interior cells are marked Path on g.
//   - Result with Found == false and a nil error when no route exists;
//     g is left unchanged.
//   - err for invalid input only: ErrNilGrid, ErrInvalidEndpoint,
//     ErrOptionViolation, or ErrExpansionBudget when a caller cap was hit.
//
// Search does not place Start/Goal markers; use grid.SetStart/SetGoal for that.
//
// Complexity:
//
//   - Time:  O(E log E), E = frontier insertions (≤ 4 per expanded cell).
//   - Space: O(E) for the node pool and frontier, O(W×H) for the visited set.
func Search(g *grid.Grid, start, goal grid.Point, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		searchTotal.WithLabelValues(outcomeRejected).Inc()
		return Result{}, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		searchTotal.WithLabelValues(outcomeRejected).Inc()
		return Result{}, ErrNilGrid
	}
	for _, p := range [2]grid.Point{start, goal} {
		if err := g.ValidateEndpoint(p.X, p.Y); err != nil {
			searchTotal.WithLabelValues(outcomeRejected).Inc()
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
		}
	}

	// 3) Run with a fresh pool, frontier and visited set
	began := time.Now()
	r := newRunner(g, start, goal, cfg)
	defer r.pool.release()

	r.init()
	res, err := r.process()
	elapsed := time.Since(began)

	// 4) Record outcome
	searchDuration.Observe(elapsed.Seconds())
	expandedCells.Observe(float64(res.Expanded))
	switch {
	case errors.Is(err, ErrExpansionBudget):
		searchTotal.WithLabelValues(outcomeBudget).Inc()
	case res.Found:
		searchTotal.WithLabelValues(outcomeFound).Inc()
		pathLength.Observe(float64(res.Length))
	default:
		searchTotal.WithLabelValues(outcomeNotFound).Inc()
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("astar search finished",
			slog.String("start", start.String()),
			slog.String("goal", goal.String()),
			slog.Bool("found", res.Found),
			slog.Int("length", res.Length),
			slog.Int("expanded", res.Expanded),
			slog.Int("pushed", res.Pushed),
			slog.Duration("elapsed", elapsed),
		)
	}

	return res, err
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g      *grid.Grid // Board searched; mutated only by succeed.
	opts   Options    // Configuration for this run.
	start  grid.Point
	goal   grid.Point
	pool   *nodePool  // Owns every node of the run.
	open   *frontier  // Handles ordered by (f, h, seq).
	closed visitedSet // Finalized cells by row-major key.
	res    Result
}

func newRunner(g *grid.Grid, start, goal grid.Point, cfg Options) *runner {
	cells := g.Width() * g.Height()
	return &runner{
		g:      g,
		opts:   cfg,
		start:  start,
		goal:   goal,
		pool:   newNodePool(cells),
		open:   newFrontier(cells),
		closed: newVisitedSet(cells),
	}
}

// init seeds the frontier with the start node: g = 0, no predecessor.
func (r *runner) init() {
	r.push(r.start.X, r.start.Y, 0, noParent)
}

// push allocates a node for (x,y) and inserts its handle into the frontier.
func (r *runner) push(x, y, g int, parent nodeID) {
	h := Manhattan(x, y, r.goal.X, r.goal.Y)
	id := r.pool.alloc(x, y, g, h, parent)
	r.open.push(id, g+h, h)
	r.res.Pushed++
	r.opts.OnPush(grid.Point{X: x, Y: y}, g, h)
}

// process is the main loop: pop the cheapest node, test for the goal,
// close it, and expand its neighbors, until the frontier drains.
func (r *runner) process() (Result, error) {
	for r.open.len() > 0 {
		// 1) Pop the smallest-f entry.
		id := r.open.pop()
		cur := *r.pool.at(id)
		key := r.g.Index(cur.x, cur.y)

		// 2) Stale duplicate of a finalized cell: discard.
		if r.closed.has(key) {
			continue
		}

		// 3) Goal test.
		if cur.x == r.goal.X && cur.y == r.goal.Y {
			return r.res, r.succeed(id)
		}

		// 4) Respect the caller's budget before doing more work.
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return r.res, fmt.Errorf("%w: %d expansions", ErrExpansionBudget, r.res.Expanded)
		}

		// 5) Close and expand.
		r.closed.add(key)
		r.res.Expanded++
		r.opts.OnExpand(cur.point(), cur.g)
		r.expand(id, cur)
	}

	return r.res, nil
}

// expand generates the orthogonal neighbors of cur, skipping cells that are
// out of bounds, Blocked, or already closed.
func (r *runner) expand(id nodeID, cur node) {
	for _, d := range r.g.Offsets() {
		nx, ny := cur.x+d[0], cur.y+d[1]
		if !r.g.IsTraversable(nx, ny) {
			continue
		}
		if r.closed.has(r.g.Index(nx, ny)) {
			continue
		}
		r.push(nx, ny, cur.g+1, id)
	}
}

// succeed fills the result from the goal node and, if enabled, annotates the grid.
func (r *runner) succeed(goalID nodeID) error {
	chain := r.walkBack(goalID)
	r.res.Found = true
	r.res.Length = len(chain) - 1
	r.res.Path = reversed(chain)
	if !r.opts.MarkGrid {
		return nil
	}
	// interior cells only; Start and Goal keep their markers
	if err := r.g.MarkPath(r.res.Interior()); err != nil {
		return fmt.Errorf("astar: mark route: %w", err)
	}
	return nil
}
