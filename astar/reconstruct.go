package astar

import "github.com/katalvlaran/lvroute/grid"

// walkBack follows predecessor handles from id to the root and returns the
// visited cells in goal→start order, both endpoints included. It terminates
// because parents always have smaller handles than their children.
func (r *runner) walkBack(id nodeID) []grid.Point {
	n := r.pool.at(id)
	chain := make([]grid.Point, 0, n.g+1)
	for cur := id; cur != noParent; cur = r.pool.at(cur).parent {
		chain = append(chain, r.pool.at(cur).point())
	}
	return chain
}

// reversed returns a new slice with the elements of s in reverse order.
func reversed(s []grid.Point) []grid.Point {
	out := make([]grid.Point, len(s))
	for i, p := range s {
		out[len(s)-1-i] = p
	}
	return out
}
