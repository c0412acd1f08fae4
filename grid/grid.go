package grid

import (
	"errors"
	"fmt"
)

// ErrOccupied indicates an obstacle was requested on the current Start or Goal cell.
var ErrOccupied = errors.New("grid: cell is occupied by an endpoint")

// ErrBlockedCell indicates a path coordinate lands on an obstacle.
var ErrBlockedCell = errors.New("grid: cell is blocked")

// offsets4 lists the orthogonal neighbor offsets: N, E, S, W.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// New constructs an empty Grid (every cell Free) from the given options.
// Returns ErrBadDimensions if the requested size is not positive.
// Complexity: O(W×H) time and memory.
func New(opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, o.Width, o.Height)
	}

	return &Grid{
		width:  o.Width,
		height: o.Height,
		cells:  make([]CellState, o.Width*o.Height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The caller must ensure the coordinate is in bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Offsets returns the four orthogonal neighbor offsets in N, E, S, W order.
func (g *Grid) Offsets() [4][2]int { return offsets4 }

// State returns the state of cell (x,y). Out-of-bounds cells report Blocked.
func (g *Grid) State(x, y int) CellState {
	if !g.InBounds(x, y) {
		return Blocked
	}
	return g.cells[g.Index(x, y)]
}

// MarkObstacles marks every in-range coordinate as Blocked. Coordinates outside
// the grid, or on the current Start/Goal cell, are ignored; one wrapped warning
// (ErrOutOfRange or ErrOccupied) is returned per ignored coordinate.
// Duplicates are harmless. A nil result means every coordinate was applied.
func (g *Grid) MarkObstacles(coords []Point) []error {
	var warnings []error
	for _, p := range coords {
		if !g.InBounds(p.X, p.Y) {
			warnings = append(warnings,
				fmt.Errorf("%w: obstacle %v outside %dx%d", ErrOutOfRange, p, g.width, g.height))
			continue
		}
		if (g.hasStart && p == g.start) || (g.hasGoal && p == g.goal) {
			warnings = append(warnings, fmt.Errorf("%w: obstacle %v", ErrOccupied, p))
			continue
		}
		g.cells[g.Index(p.X, p.Y)] = Blocked
	}

	return warnings
}

// IsTraversable reports whether (x,y) is in bounds and not Blocked.
func (g *Grid) IsTraversable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.Index(x, y)] != Blocked
}

// IsValidEndpoint reports whether (x,y) may serve as a start or goal:
// in bounds and not Blocked.
func (g *Grid) IsValidEndpoint(x, y int) bool {
	return g.IsTraversable(x, y)
}

// ValidateEndpoint is the error form of IsValidEndpoint. It never substitutes
// a different cell; callers are expected to ask for another coordinate.
func (g *Grid) ValidateEndpoint(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrInvalidEndpoint, Pt(x, y), g.width, g.height)
	}
	if g.cells[g.Index(x, y)] == Blocked {
		return fmt.Errorf("%w: %v is blocked", ErrInvalidEndpoint, Pt(x, y))
	}
	return nil
}

// SetStart places the Start marker at (x,y), clearing any previous Start.
func (g *Grid) SetStart(x, y int) error {
	if err := g.ValidateEndpoint(x, y); err != nil {
		return err
	}
	if g.hasStart && g.cells[g.Index(g.start.X, g.start.Y)] == Start {
		g.cells[g.Index(g.start.X, g.start.Y)] = Free
	}
	g.start, g.hasStart = Pt(x, y), true
	if !g.hasGoal || g.goal != g.start {
		g.cells[g.Index(x, y)] = Start
	}

	return nil
}

// SetGoal places the Goal marker at (x,y), clearing any previous Goal.
// When the goal coincides with the start the cell shows Goal.
func (g *Grid) SetGoal(x, y int) error {
	if err := g.ValidateEndpoint(x, y); err != nil {
		return err
	}
	if g.hasGoal && g.cells[g.Index(g.goal.X, g.goal.Y)] == Goal {
		g.cells[g.Index(g.goal.X, g.goal.Y)] = Free
		if g.hasStart && g.goal == g.start {
			g.cells[g.Index(g.start.X, g.start.Y)] = Start
		}
	}
	g.goal, g.hasGoal = Pt(x, y), true
	g.cells[g.Index(x, y)] = Goal

	return nil
}

// StartPoint returns the configured start and whether one is set.
func (g *Grid) StartPoint() (Point, bool) { return g.start, g.hasStart }

// GoalPoint returns the configured goal and whether one is set.
func (g *Grid) GoalPoint() (Point, bool) { return g.goal, g.hasGoal }

// MarkPath marks each coordinate as Path. The Start and Goal cells keep their
// markers. Returns ErrOutOfRange or ErrBlockedCell on the first bad coordinate;
// cells before it remain marked.
func (g *Grid) MarkPath(coords []Point) error {
	for _, p := range coords {
		if !g.InBounds(p.X, p.Y) {
			return fmt.Errorf("%w: path cell %v", ErrOutOfRange, p)
		}
		i := g.Index(p.X, p.Y)
		switch g.cells[i] {
		case Blocked:
			return fmt.Errorf("%w: path cell %v", ErrBlockedCell, p)
		case Start, Goal:
			continue
		}
		g.cells[i] = Path
	}

	return nil
}

// ClearPath resets every Path cell back to Free.
func (g *Grid) ClearPath() {
	for i, s := range g.cells {
		if s == Path {
			g.cells[i] = Free
		}
	}
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]CellState, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}
