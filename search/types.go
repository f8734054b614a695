// Package search defines the graph capability contracts, result types,
// configuration options, and sentinel errors for the best-first engine.
package search

import "errors"

// Sentinel errors returned by the search engine.
var (
	// ErrNoPathToTarget indicates the frontier was exhausted without ever
	// finalizing the target node.
	ErrNoPathToTarget = errors.New("search: target is not reachable")

	// ErrHeuristicFailsOnStart indicates the heuristic declared the source
	// node unable to reach the target before any search began.
	ErrHeuristicFailsOnStart = errors.New("search: heuristic rejects the start node")

	// ErrInvalidReverseIndex indicates back-tracking along the path found a
	// dangling index. This is an internal invariant violation, not a data
	// problem in the caller's graph.
	ErrInvalidReverseIndex = errors.New("search: back-tracking along path found dangling index")

	// ErrCircularReversePath indicates back-tracking along the path found a
	// loop. Back-references must form a tree rooted at the source, so this
	// is an internal invariant violation as well.
	ErrCircularReversePath = errors.New("search: back-tracking along path found loop")
)

// Graph is the minimal capability a domain type must provide to be
// searched: enumerate the outgoing edges of a node. Nodes are opaque
// comparable values; graphs are typically implicit and never materialized.
//
// For deterministic tie-breaking in tests, implementations should produce
// connections in a stable order, though the engine does not require it.
type Graph[T comparable] interface {
	// ConnectionsFrom returns every node directly reachable from node,
	// along with the cost of each edge.
	ConnectionsFrom(node T) []Edge[T]
}

// HeuristicGraph is an optional upgrade of Graph. Target-directed searches
// (FindPath, ShortestPath) use HeuristicBetween automatically when the
// graph provides it, turning Dijkstra into A*.
type HeuristicGraph[T comparable] interface {
	Graph[T]

	// HeuristicBetween returns a lower bound on the true remaining cost
	// from one node to another. Returning ok=false signals that `to` is
	// known to be unreachable from `from`; the engine prunes such nodes.
	// Returning 0 degenerates the search to plain Dijkstra.
	//
	// The bound MUST be admissible (never overestimate) or A* may return
	// a suboptimal path. The engine does not verify this.
	HeuristicBetween(from, to T) (estimate uint64, ok bool)
}

// Edge is a single outgoing connection: the neighbor plus the cost of
// traversing to it. Weights are unsigned, so non-negativity — required for
// Dijkstra/A* correctness — holds by construction.
type Edge[T comparable] struct {
	To     T
	Weight uint64
}

// Heuristic estimates the remaining cost from a node to the search's
// (implicit) target. ok=false marks the node as a dead end: it is never
// enqueued. Used by Search via WithHeuristic; callers close over whatever
// target they are steering toward.
type Heuristic[T comparable] func(node T) (estimate uint64, ok bool)

// BackRef records which finalized node produced a node's best-known cost:
// the ordinal index of the predecessor in finalization order, plus the
// weight of that last hop. Indices, not node values, keep the bookkeeping
// free of reference cycles.
type BackRef struct {
	// FromIndex is an index into the finalization-ordered table.
	FromIndex int
	// Weight is the cost of the edge that was followed.
	Weight uint64
}

// Metadata is everything the engine knows about a node at the moment it is
// finalized.
type Metadata struct {
	// Dist is the proven minimal cost from the source to this node.
	Dist uint64
	// Heuristic is the estimate that was used when the node was enqueued.
	Heuristic uint64
	// Back is the edge that produced Dist. Only the source node has a nil
	// Back; every other finalized node has exactly one.
	Back *BackRef
	// OutDegree is the number of connections observed when the node was
	// expanded.
	OutDegree int
}

// Entry pairs a finalized node with its metadata. Entries are produced in
// finalization order, so an Entry's position in a collected slice is its
// ordinal index.
type Entry[T comparable] struct {
	Node T
	Meta Metadata
}

// PathStep is one hop of a reconstructed path: the node stepped onto and
// the weight of the edge taken to reach it.
type PathStep[T comparable] struct {
	Node   T
	Weight uint64
}

// Result is the full outcome of a target-directed search.
type Result[T comparable] struct {
	// Path runs from the first step after the source up to and including
	// the target; the source itself is not listed. The step weights sum to
	// Cost. Nil unless the search succeeded.
	Path []PathStep[T]
	// Cost is the total finalized cost of the target.
	Cost uint64
	// Reachable lists every node that was finalized before the frontier
	// ran dry. Populated only alongside ErrNoPathToTarget, for diagnostics.
	Reachable []T
	// Expanded counts how many nodes were finalized during the search.
	Expanded int
}

// Options configures a search. Zero value means plain Dijkstra.
type Options[T comparable] struct {
	// Heuristic steers the search toward a target. Nil selects the zero
	// heuristic (pure Dijkstra). Target-directed entry points fall back to
	// the graph's own HeuristicBetween when no option is given.
	Heuristic Heuristic[T]
}

// Option is a functional option for configuring a search.
type Option[T comparable] func(*Options[T])

// WithHeuristic supplies an admissible remaining-cost estimate, upgrading
// the search to A*. Passing nil restores the Dijkstra default.
func WithHeuristic[T comparable](h Heuristic[T]) Option[T] {
	return func(o *Options[T]) {
		o.Heuristic = h
	}
}

// DefaultOptions returns the Options used when no functional options are
// given: no heuristic, i.e. pure Dijkstra.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{}
}
