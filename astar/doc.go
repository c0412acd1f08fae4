// Package astar provides best-first A* route search over a grid.Grid.
//
// Overview:
//
//   - Search computes a shortest route between two cells, moving only
//     N, E, S, W with unit cost and never entering Blocked cells.
//   - Frontier order is f = g + h ascending, where g is steps taken and h the
//     Manhattan distance to the goal. Ties prefer the lower h, then the
//     earlier insertion, so repeated runs on the same input mark the same cells.
//   - A missing route is a normal outcome (Result.Found == false, nil error),
//     not a failure.
//
// When to use:
//
//   - Single-agent routing on small to moderate static boards.
//   - Anywhere Dijkstra would work but a goal is known and a lower bound helps.
//
// Memory model:
//
//   - Each run owns a node pool; nodes reference their predecessor by handle.
//     The frontier and the visited set hold handles and keys only, and the
//     pool is released in one step when the run ends.
//   - The same cell may be pushed several times before it is closed; stale
//     entries are skipped on pop. Memory therefore grows with insertions, not
//     cells, which is fine for boards up to a few million cells.
//
// Performance and complexity:
//
//   - Time:  O(E log E), E ≤ 4 × expanded cells.
//   - Space: O(E + W×H).
//
// Observability:
//
//   - Prometheus: lvroute_astar_search_total{outcome}, search duration,
//     expanded cells and path length histograms (default registry).
//   - WithLogger: one Debug record per run.
//   - WithOnPush / WithOnExpand: hooks for step visualizers and tests.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrInvalidEndpoint, ErrOptionViolation, ErrExpansionBudget.
//
// Example usage:
//
//	g, _ := grid.New()
//	g.MarkObstacles(grid.DefaultObstacles())
//	_ = g.SetStart(0, 0)
//	_ = g.SetGoal(9, 9)
//	res, err := astar.Search(g, grid.Pt(0, 0), grid.Pt(9, 9))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Length)
package astar
