// Package grid: the adapter that makes a cost grid searchable.
package grid

import "github.com/arreto/adventkit/search"

// CostGraph presents a Map[uint64] of per-cell entry costs as a weighted
// graph over Pos nodes: Rook moves, each edge weighted by the cost of the
// cell being entered. HeuristicBetween is the Manhattan distance, which is
// admissible whenever every cell cost is at least 1 (each step then costs
// at least one). Grids containing zero-cost cells should be searched with
// the plain Dijkstra entry points instead.
type CostGraph struct {
	costs *Map[uint64]
}

// NewCostGraph wraps a cost map. The map is borrowed, not copied; mutating
// it mid-search invalidates the search.
func NewCostGraph(costs *Map[uint64]) *CostGraph {
	return &CostGraph{costs: costs}
}

// ConnectionsFrom returns the rook neighbors of p, each weighted by the
// entered cell's cost.
func (g *CostGraph) ConnectionsFrom(p Pos) []search.Edge[Pos] {
	neighbors := g.costs.Adjacent(p, Rook)
	edges := make([]search.Edge[Pos], len(neighbors))
	for i, n := range neighbors {
		edges[i] = search.Edge[Pos]{To: n, Weight: g.costs.At(n)}
	}

	return edges
}

// HeuristicBetween lower-bounds the remaining cost by the Manhattan
// distance. Every cell is assumed reachable, so ok is always true.
func (g *CostGraph) HeuristicBetween(from, to Pos) (uint64, bool) {
	return g.costs.Manhattan(from, to), true
}
