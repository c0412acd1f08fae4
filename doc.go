// Package lvroute finds shortest walking routes on small obstacle boards.
//
// 🚀 What is lvroute?
//
//	A compact A* toolkit built around one explicit board value:
//		• grid   – fixed W×H cell store: obstacles, endpoints, route marks, BFS oracle
//		• astar  – A* search with Manhattan heuristic, handle-based node pool
//		• render – text board with the . # * I F legend
//		• route  – request orchestration: YAML scenarios, logging, tracing
//
// Quick ASCII example (I start, F goal, # obstacle, * route):
//
//	I * # * F
//	. * # * .
//	. * * * .
//
// The routecalc command under cmd/ wraps all of this in an interactive prompt.
//
//	go install github.com/katalvlaran/lvroute/cmd/routecalc@latest
package lvroute
