// Package search implements lazy best-first search (Dijkstra and A*) over
// implicit weighted graphs with arbitrary comparable node types.
//
// A graph is anything that can enumerate outgoing edges from a node; it is
// never materialized. The engine pops the most promising frontier node,
// asks the graph for its neighbors, and finalizes nodes one at a time in
// non-decreasing order of distance from the source. Supplying a heuristic
// turns the same engine into A*; the default zero heuristic is plain
// Dijkstra.
//
// Complexity (V = finalized nodes, E = enumerated edges):
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V pops that survive the
//     stale-entry check.
//   - Each edge relaxation may push one heap entry: up to E pushes under
//     the lazy decrease-key strategy.
//   - Space: O(V + E)
//   - O(V) for the finalized set and best-cost map.
//   - O(E) worst case for duplicate entries waiting in the heap.
//
// Entry points:
//
//   - Search        — the lazy Iterator; one Next() call pops and expands
//     exactly one node, forever on infinite graphs.
//   - FindPath      — target-directed search with the full result surface:
//     path, cost, reachable set on failure.
//   - ShortestPath  — FindPath for callers that only distinguish "found"
//     from "not found".
//   - Dijkstra      — exhaustive single-source distance table.
//   - DepthFirst    — unweighted reachability iterator, each node once.
//
// Heuristics must be admissible (never overestimate the true remaining
// cost) or A* loses its optimality guarantee. The engine does not check
// this; it is a contract on HeuristicBetween and WithHeuristic.
//
// Errors (sentinel):
//
//   - ErrNoPathToTarget        — frontier exhausted before the target.
//   - ErrHeuristicFailsOnStart — the heuristic rejected the source itself.
//   - ErrInvalidReverseIndex   — back-reference outside the finalized
//     table; an engine bug, surfaced rather than swallowed.
//   - ErrCircularReversePath   — back-reference chain revisited a node;
//     same severity.
package search
