package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"Negative", -3, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(grid.WithSize(tc.w, tc.h))
			if !errors.Is(err, grid.ErrBadDimensions) {
				t.Errorf("New(%dx%d) error = %v; want ErrBadDimensions", tc.w, tc.h, err)
			}
		})
	}
}

// TestNew_Default checks the 10×10 default and that every cell starts Free.
func TestNew_Default(t *testing.T) {
	g, err := grid.New()
	require.NoError(t, err)
	assert.Equal(t, grid.DefaultWidth, g.Width())
	assert.Equal(t, grid.DefaultHeight, g.Height())
	assert.Equal(t, 100, g.Count(grid.Free))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(grid.WithSize(3, 2))
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestIndexCoordinate verifies the row-major round trip y*W+x.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New(grid.WithSize(7, 4))
	require.NoError(t, err)

	assert.Equal(t, 2*7+5, g.Index(5, 2))
	x, y := g.Coordinate(g.Index(6, 3))
	assert.Equal(t, 6, x)
	assert.Equal(t, 3, y)
}

//----------------------------------------------------------------------------//
// Obstacles
//----------------------------------------------------------------------------//

// TestMarkObstacles_OutOfRange ensures bad coordinates are dropped with a
// warning while valid ones (including duplicates) are applied.
func TestMarkObstacles_OutOfRange(t *testing.T) {
	g, err := grid.New()
	require.NoError(t, err)

	warnings := g.MarkObstacles([]grid.Point{
		{1, 1}, {1, 1}, {10, 0}, {0, 10}, {-1, 3}, {4, 4},
	})
	require.Len(t, warnings, 3)
	for _, w := range warnings {
		assert.ErrorIs(t, w, grid.ErrOutOfRange)
	}
	assert.Equal(t, 2, g.Count(grid.Blocked))
	assert.Equal(t, grid.Blocked, g.State(1, 1))
	assert.Equal(t, grid.Blocked, g.State(4, 4))
	assert.False(t, g.IsTraversable(1, 1))
}

// TestMarkObstacles_OnEndpoint keeps Start/Goal from ever becoming Blocked.
func TestMarkObstacles_OnEndpoint(t *testing.T) {
	g, err := grid.New()
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetGoal(9, 9))

	warnings := g.MarkObstacles([]grid.Point{{0, 0}, {9, 9}})
	require.Len(t, warnings, 2)
	assert.ErrorIs(t, warnings[0], grid.ErrOccupied)
	assert.Equal(t, grid.Start, g.State(0, 0))
	assert.Equal(t, grid.Goal, g.State(9, 9))
}

// TestDefaultObstacles checks the classic layout fits the default board.
func TestDefaultObstacles(t *testing.T) {
	g, err := grid.New()
	require.NoError(t, err)

	obs := grid.DefaultObstacles()
	require.Len(t, obs, 15)
	assert.Empty(t, g.MarkObstacles(obs))
	assert.Equal(t, 15, g.Count(grid.Blocked))

	// mutating the returned slice must not leak into later calls
	obs[0] = grid.Pt(0, 0)
	assert.Equal(t, grid.Pt(1, 1), grid.DefaultObstacles()[0])
}

//----------------------------------------------------------------------------//
// Endpoints
//----------------------------------------------------------------------------//

// TestValidateEndpoint covers out-of-bounds and blocked endpoints.
func TestValidateEndpoint(t *testing.T) {
	g, err := grid.New()
	require.NoError(t, err)
	g.MarkObstacles([]grid.Point{{3, 3}})

	assert.True(t, g.IsValidEndpoint(0, 0))
	assert.False(t, g.IsValidEndpoint(3, 3))
	assert.False(t, g.IsValidEndpoint(-1, 0))
	assert.False(t, g.IsValidEndpoint(0, 10))

	assert.NoError(t, g.ValidateEndpoint(9, 9))
	assert.ErrorIs(t, g.ValidateEndpoint(3, 3), grid.ErrInvalidEndpoint)
	assert.ErrorIs(t, g.ValidateEndpoint(10, 10), grid.ErrInvalidEndpoint)
	assert.ErrorIs(t, g.SetGoal(3, 3), grid.ErrInvalidEndpoint)
	assert.Equal(t, grid.Blocked, g.State(3, 3))
}

// TestSetStartGoal_Move verifies exactly one Start and one Goal survive moves.
func TestSetStartGoal_Move(t *testing.T) {
	g, err := grid.New(grid.WithSize(4, 4))
	require.NoError(t, err)

	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetGoal(3, 3))
	require.NoError(t, g.SetStart(1, 0))
	require.NoError(t, g.SetGoal(3, 2))

	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.Goal))
	assert.Equal(t, grid.Free, g.State(0, 0))
	assert.Equal(t, grid.Free, g.State(3, 3))

	s, ok := g.StartPoint()
	require.True(t, ok)
	assert.Equal(t, grid.Pt(1, 0), s)
}

// TestSetStartGoal_SameCell covers start == goal: the cell shows Goal and
// moving the goal away restores the Start marker.
func TestSetStartGoal_SameCell(t *testing.T) {
	g, err := grid.New()
	require.NoError(t, err)

	require.NoError(t, g.SetStart(5, 5))
	require.NoError(t, g.SetGoal(5, 5))
	assert.Equal(t, grid.Goal, g.State(5, 5))
	assert.Equal(t, 0, g.Count(grid.Start))

	require.NoError(t, g.SetGoal(6, 5))
	assert.Equal(t, grid.Start, g.State(5, 5))
	assert.Equal(t, grid.Goal, g.State(6, 5))
}

//----------------------------------------------------------------------------//
// Path marking
//----------------------------------------------------------------------------//

// TestMarkPath leaves endpoints untouched and rejects blocked cells.
func TestMarkPath(t *testing.T) {
	g, err := grid.New(grid.WithSize(3, 1))
	require.NoError(t, err)
	require.NoError(t, g.SetStart(0, 0))
	require.NoError(t, g.SetGoal(2, 0))

	require.NoError(t, g.MarkPath([]grid.Point{{0, 0}, {1, 0}, {2, 0}}))
	assert.Equal(t, grid.Start, g.State(0, 0))
	assert.Equal(t, grid.Path, g.State(1, 0))
	assert.Equal(t, grid.Goal, g.State(2, 0))

	g.ClearPath()
	assert.Equal(t, grid.Free, g.State(1, 0))

	g.MarkObstacles([]grid.Point{{1, 0}})
	assert.ErrorIs(t, g.MarkPath([]grid.Point{{1, 0}}), grid.ErrBlockedCell)
	assert.ErrorIs(t, g.MarkPath([]grid.Point{{5, 0}}), grid.ErrOutOfRange)
}

// TestClone ensures the copy does not share cell storage.
func TestClone(t *testing.T) {
	g, err := grid.New(grid.WithSize(2, 2))
	require.NoError(t, err)
	cp := g.Clone()
	cp.MarkObstacles([]grid.Point{{0, 0}})

	assert.Equal(t, grid.Free, g.State(0, 0))
	assert.Equal(t, grid.Blocked, cp.State(0, 0))
}

// TestCellState_String covers the state names used in logs.
func TestCellState_String(t *testing.T) {
	assert.Equal(t, "free", grid.Free.String())
	assert.Equal(t, "blocked", grid.Blocked.String())
	assert.Equal(t, "path", grid.Path.String())
	assert.Equal(t, "CellState(9)", grid.CellState(9).String())
	assert.Equal(t, "(3,4)", grid.Pt(3, 4).String())
}
