// Package render turns a grid.Grid into a human-readable character board.
//
// Legend:
//
//	.  Free
//	#  Blocked
//	*  Path
//	I  Start
//	F  Goal
//
// Cells in a row are separated by one space. WithAxes adds column indices on
// a header line and a row index before each row, padded so that boards wider
// or taller than 10 stay aligned.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/grid"
)

// ErrNilGrid indicates that a nil *grid.Grid was passed to Render.
var ErrNilGrid = errors.New("render: grid is nil")

// Legend symbols.
const (
	SymbolFree    = '.'
	SymbolBlocked = '#'
	SymbolPath    = '*'
	SymbolStart   = 'I'
	SymbolGoal    = 'F'
	SymbolUnknown = '?'
)

// Options controls the board layout.
type Options struct {
	// Axes prints column and row indices.
	Axes bool
}

// Option configures Render via functional arguments.
type Option func(*Options)

// WithAxes enables column and row index labels.
func WithAxes() Option {
	return func(o *Options) { o.Axes = true }
}

// Symbol returns the legend character for a cell state.
func Symbol(s grid.CellState) rune {
	switch s {
	case grid.Free:
		return SymbolFree
	case grid.Blocked:
		return SymbolBlocked
	case grid.Path:
		return SymbolPath
	case grid.Start:
		return SymbolStart
	case grid.Goal:
		return SymbolGoal
	default:
		return SymbolUnknown
	}
}

// Render writes g to w, one line per row, each line terminated by '\n'.
func Render(w io.Writer, g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	if _, err := io.WriteString(w, String(g, opts...)); err != nil {
		return fmt.Errorf("render: write board: %w", err)
	}
	return nil
}

// String returns the rendered board. A nil grid renders as the empty string.
func String(g *grid.Grid, opts ...Option) string {
	if g == nil {
		return ""
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	colW := len(strconv.Itoa(g.Width() - 1))
	rowW := len(strconv.Itoa(g.Height() - 1))

	var b strings.Builder
	b.Grow((g.Width()*(colW+1) + rowW + 2) * (g.Height() + 1))

	if o.Axes {
		b.WriteString(strings.Repeat(" ", rowW+1))
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", colW, x)
		}
		b.WriteByte('\n')
	}

	for y := 0; y < g.Height(); y++ {
		if o.Axes {
			fmt.Fprintf(&b, "%*d ", rowW, y)
		}
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if o.Axes && colW > 1 {
				b.WriteString(strings.Repeat(" ", colW-1))
			}
			b.WriteRune(Symbol(g.State(x, y)))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
