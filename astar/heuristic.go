package astar

import "golang.org/x/exp/constraints"

// Manhattan returns |ax-bx| + |ay-by|, the exact step count between two cells
// on an open 4-connected grid. It never overestimates and satisfies the
// triangle inequality for unit moves, so A* ordered by it is optimal without
// re-opening closed cells.
func Manhattan[T constraints.Signed](ax, ay, bx, by T) T {
	return absDiff(ax, bx) + absDiff(ay, by)
}

func absDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
