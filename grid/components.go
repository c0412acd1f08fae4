package grid

// Components finds all 4-connected regions of traversable (non-Blocked) cells.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.Index(x, y)
			if seen[i0] || g.cells[i0] == Blocked {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := g.Coordinate(queue[qi])
				for _, d := range offsets4 {
					vx, vy := ux+d[0], uy+d[1]
					if !g.IsTraversable(vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b lie in the same traversable region.
func (g *Grid) Connected(a, b Point) bool {
	_, ok := g.StepDistance(a.X, a.Y, b.X, b.Y)
	return ok
}

// StepDistance returns the minimal number of orthogonal unit steps from
// (ax,ay) to (bx,by) avoiding Blocked cells, computed by plain breadth-first
// search. ok is false when either endpoint is not traversable or b is
// unreachable from a.
//
// It is an exhaustive oracle, independent of any heuristic search.
// Complexity: O(W·H) time and memory.
func (g *Grid) StepDistance(ax, ay, bx, by int) (steps int, ok bool) {
	if !g.IsTraversable(ax, ay) || !g.IsTraversable(bx, by) {
		return 0, false
	}
	src, dst := g.Index(ax, ay), g.Index(bx, by)
	if src == dst {
		return 0, true
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := make([]int, 0, len(g.cells))
	queue = append(queue, src)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ux, uy := g.Coordinate(u)
		for _, d := range offsets4 {
			vx, vy := ux+d[0], uy+d[1]
			if !g.IsTraversable(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			if v == dst {
				return dist[v], true
			}
			queue = append(queue, v)
		}
	}

	return 0, false
}
