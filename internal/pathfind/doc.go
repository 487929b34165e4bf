// Package pathfind implements A* search over a scene's walkability grid.
//
// A PathFinder pulls grid dimensions and per-cell properties from a
// GridCostProvider, builds a fresh NodeGrid for every request, searches it
// with 8-directional movement and an octile cost metric (orthogonal 10,
// diagonal 14), and materializes the result as a StepStack whose top is the
// start cell.
//
// Cells flagged as NPC obstacles are never entered. Path cells and plain
// cells carry configurable movement penalties which are added to the
// accumulated cost when penalties are observed. The heuristic never includes
// penalties, so with penalties enabled the returned path is not guaranteed to
// be the cheapest one. With penalties ignored the search is optimal.
//
// Every search allocates its own grid, open set and closed set. A PathFinder
// only holds configuration and may be shared between callers as long as the
// provider is safe for concurrent reads.
package pathfind
