// Package grid models the board a route is searched on: a fixed W×H set of
// cells, each Free, Blocked, Start, Goal, or Path.
//
// What:
//
//   - Grid stores cell states row-major (index = y*Width + x).
//   - MarkObstacles blocks cells; out-of-range entries are dropped and reported.
//   - IsValidEndpoint / ValidateEndpoint vet a start or goal before a search.
//   - MarkPath / ClearPath annotate and reset a discovered route.
//   - Components and StepDistance answer reachability questions by plain BFS.
//
// Why:
//
//   - One explicit value per request replaces process-wide board state.
//   - The BFS oracle gives tests an independent measure of shortest routes.
//
// Complexity:
//
//   - New, ClearPath, Count, Clone: O(W×H).
//   - InBounds, State, IsTraversable, SetStart, SetGoal: O(1).
//   - Components, StepDistance: O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - WithSize(w, h): grid dimensions, default 10×10.
//
// Errors:
//
//   - ErrBadDimensions: width or height not positive.
//   - ErrOutOfRange: coordinate outside the grid (non-fatal for obstacles).
//   - ErrOccupied: obstacle requested on the Start or Goal cell.
//   - ErrInvalidEndpoint: start/goal out of bounds or on a Blocked cell.
//   - ErrBlockedCell: a path coordinate lands on an obstacle.
package grid
