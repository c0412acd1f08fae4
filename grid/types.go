// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/lvroute.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfRange indicates an obstacle coordinate outside the grid; the coordinate is ignored.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrInvalidEndpoint indicates a start or goal that is out of bounds or not a free cell.
	ErrInvalidEndpoint = errors.New("grid: invalid endpoint")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Default dimensions used when no WithSize option is given.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// CellState classifies a single cell.
type CellState uint8

const (
	// Free is an open, walkable cell.
	Free CellState = iota
	// Blocked is an obstacle; never traversable.
	Blocked
	// Start marks the search origin.
	Start
	// Goal marks the search target.
	Goal
	// Path marks an interior cell of a discovered route.
	Path
)

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Point is a cell coordinate; X is the column, Y the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Width is the number of columns.
	Width int
	// Height is the number of rows.
	Height int

	err error
}

// Option configures a Grid via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with the default 10×10 dimensions.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// WithSize sets the grid dimensions. Non-positive values are recorded
// and surfaced as ErrBadDimensions by New.
func WithSize(width, height int) Option {
	return func(o *Options) {
		if width <= 0 || height <= 0 {
			o.err = fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
			return
		}
		o.Width, o.Height = width, height
	}
}

// Grid is a fixed-size W×H cell-state store. Cells are stored row-major,
// so the cell (x,y) lives at index y*Width+x.
//
// A Grid is not safe for concurrent mutation.
type Grid struct {
	width, height int
	cells         []CellState
	start, goal   Point
	hasStart      bool
	hasGoal       bool
}
