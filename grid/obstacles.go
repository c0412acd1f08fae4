package grid

import (
	"golang.org/x/exp/rand"
)

// defaultObstacles is the fixed obstacle layout of the classic 10×10 board.
var defaultObstacles = []Point{
	{1, 1}, {1, 2}, {2, 6},
	{3, 1}, {3, 2}, {3, 3},
	{4, 5}, {5, 6}, {9, 1},
	{6, 1}, {6, 2}, {6, 7},
	{8, 1}, {8, 6}, {9, 4},
}

// DefaultObstacles returns a copy of the predefined obstacle layout for the
// default 10×10 board.
func DefaultObstacles() []Point {
	out := make([]Point, len(defaultObstacles))
	copy(out, defaultObstacles)
	return out
}

// RandomObstacles draws n obstacle coordinates uniformly over a width×height
// area using r. Duplicates are possible and harmless when marked.
// A nil r uses a source seeded with 1 so results stay reproducible.
func RandomObstacles(r *rand.Rand, width, height, n int) []Point {
	if width <= 0 || height <= 0 || n <= 0 {
		return nil
	}
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{X: r.Intn(width), Y: r.Intn(height)}
	}
	return out
}
