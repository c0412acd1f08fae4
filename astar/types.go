// Package astar defines core types and configuration options
// for A* route search on a grid.Grid.
//
// Options:
//
//	– MaxExpansions: optional cap on expanded cells; 0 means unlimited.
//	– OnPush:        callback for every node inserted into the frontier.
//	– OnExpand:      callback for every node finalized and expanded.
//	– Logger:        optional *slog.Logger receiving Debug records per run.
//	– MarkGrid:      annotate the grid with Path markers on success (default true).
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrInvalidEndpoint  wraps grid.ErrInvalidEndpoint for a bad start or goal.
//	– ErrOptionViolation  if an Option was given an invalid argument.
//	– ErrExpansionBudget  if MaxExpansions was reached before termination.
package astar

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvroute/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates the start or goal failed grid validation.
	// It wraps grid.ErrInvalidEndpoint so either sentinel matches.
	ErrInvalidEndpoint = fmt.Errorf("astar: %w", grid.ErrInvalidEndpoint)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionBudget indicates the caller-imposed expansion cap was hit.
	// The returned Result still carries the counters gathered so far.
	ErrExpansionBudget = errors.New("astar: expansion budget exhausted")
)

// Options configures a single Search run.
type Options struct {
	// MaxExpansions, if > 0, aborts the run after that many expansions.
	MaxExpansions int

	// OnPush is called when a node enters the frontier, with its cost-so-far
	// and heuristic estimate.
	OnPush func(p grid.Point, g, h int)

	// OnExpand is called when a node is finalized, before its neighbors are generated.
	OnExpand func(p grid.Point, g int)

	// Logger receives Debug records; nil disables logging.
	Logger *slog.Logger

	// MarkGrid controls whether a found route is written to the grid as Path cells.
	MarkGrid bool

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxExpansions: 0 (no cap).
//   - OnPush, OnExpand: no-op.
//   - Logger: nil (silent).
//   - MarkGrid: true.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		OnPush:        func(grid.Point, int, int) {},
		OnExpand:      func(grid.Point, int) {},
		MarkGrid:      true,
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0: abort with ErrExpansionBudget after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnPush registers a callback to run on every frontier insertion.
func WithOnPush(fn func(p grid.Point, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers a callback to run when a cell is expanded.
func WithOnExpand(fn func(p grid.Point, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes per-run Debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithoutMarking computes the route without writing Path cells to the grid.
func WithoutMarking() Option {
	return func(o *Options) {
		o.MarkGrid = false
	}
}

// Result holds the outcome of a search run:
//   - Found:    whether the goal was reached.
//   - Path:     cells from start to goal inclusive (nil when not found).
//   - Length:   number of unit steps, len(Path)-1.
//   - Expanded: cells finalized and expanded.
//   - Pushed:   frontier insertions, including the start node.
type Result struct {
	Found    bool
	Path     []grid.Point
	Length   int
	Expanded int
	Pushed   int
}

// Interior returns the route without its two endpoints, the cells that are
// marked as Path on the grid.
func (r Result) Interior() []grid.Point {
	if len(r.Path) <= 2 {
		return nil
	}
	return r.Path[1 : len(r.Path)-1]
}
