// Package search_test contains unit tests for the best-first engine.
// These tests validate the concrete scenarios every consumer relies on:
// ordered finalization, tie-breaking, heuristic pruning, no-path
// diagnostics, and the Dijkstra/A* equivalence on admissible heuristics.
package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arreto/adventkit/search"
)

// adjGraph is a directed graph materialized as an adjacency map; the
// simplest possible Graph implementation for tests. Connection order
// follows insertion order for deterministic tie-breaking.
type adjGraph struct {
	edges map[string][]search.Edge[string]
}

func newAdjGraph() *adjGraph {
	return &adjGraph{edges: map[string][]search.Edge[string]{}}
}

func (g *adjGraph) add(from, to string, weight uint64) *adjGraph {
	g.edges[from] = append(g.edges[from], search.Edge[string]{To: to, Weight: weight})

	return g
}

func (g *adjGraph) ConnectionsFrom(node string) []search.Edge[string] {
	return g.edges[node]
}

// diamond is the 4-node scenario used across several tests:
// A→B (1), A→C (5), B→C (1), C→D (1). Shortest A→D is A→B→C→D, cost 3.
func diamond() *adjGraph {
	return newAdjGraph().
		add("A", "B", 1).
		add("A", "C", 5).
		add("B", "C", 1).
		add("C", "D", 1)
}

func TestShortestPath_Diamond(t *testing.T) {
	// The greedy direct hop A→C (5) must lose to the cheaper detour
	// through B.
	path, cost, err := search.ShortestPath[string](diamond(), "A", "D")
	require.NoError(t, err)
	require.Equal(t, uint64(3), cost)
	require.Equal(t, []search.PathStep[string]{
		{Node: "B", Weight: 1},
		{Node: "C", Weight: 1},
		{Node: "D", Weight: 1},
	}, path)
}

func TestShortestPath_ExcludesSourceIncludesTarget(t *testing.T) {
	g := newAdjGraph().add("A", "B", 7)
	path, cost, err := search.ShortestPath[string](g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, uint64(7), cost)
	require.Len(t, path, 1)
	require.Equal(t, "B", path[0].Node)
}

func TestShortestPath_SourceIsTarget(t *testing.T) {
	// Searching from a node to itself succeeds with an empty path.
	path, cost, err := search.ShortestPath[string](diamond(), "A", "A")
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Empty(t, path)
}

func TestShortestPath_Unreachable(t *testing.T) {
	// Two disjoint single-node graphs: X and Y share no edges.
	g := newAdjGraph()
	_, _, err := search.ShortestPath[string](g, "X", "Y")
	require.ErrorIs(t, err, search.ErrNoPathToTarget)
}

func TestFindPath_UnreachableReportsReachableSet(t *testing.T) {
	// A→B is a component; Z sits alone. The diagnostics must list exactly
	// the component containing the source.
	g := newAdjGraph().add("A", "B", 1).add("B", "A", 1)
	result, err := search.FindPath[string](g, "A", "Z")
	require.ErrorIs(t, err, search.ErrNoPathToTarget)
	require.ElementsMatch(t, []string{"A", "B"}, result.Reachable)
	require.Equal(t, 2, result.Expanded)
}

func TestFindPath_HeuristicFailsOnStart(t *testing.T) {
	// A heuristic rejecting the source is a distinct outcome, reported
	// before any node is expanded.
	rejectAll := func(string) (uint64, bool) { return 0, false }
	_, err := search.FindPath[string](diamond(), "A", "D", search.WithHeuristic(rejectAll))
	require.ErrorIs(t, err, search.ErrHeuristicFailsOnStart)

	// The simple wrapper collapses it into plain "no path".
	_, _, err = search.ShortestPath[string](diamond(), "A", "D", search.WithHeuristic(rejectAll))
	require.ErrorIs(t, err, search.ErrNoPathToTarget)
}

func TestFindPath_HeuristicPrunesDeadEnds(t *testing.T) {
	// B is declared a dead end; the search must route around it even
	// though going through B would be cheaper.
	g := diamond()
	h := func(node string) (uint64, bool) {
		if node == "B" {
			return 0, false
		}

		return 0, true
	}
	result, err := search.FindPath[string](g, "A", "D", search.WithHeuristic(h))
	require.NoError(t, err)
	require.Equal(t, uint64(6), result.Cost) // forced onto A→C→D
}

func TestFindPath_ZeroHeuristicMatchesDijkstra(t *testing.T) {
	// An explicit always-zero heuristic must agree with the dedicated
	// Dijkstra default in both cost and path validity.
	zero := func(string) (uint64, bool) { return 0, true }
	withH, err := search.FindPath[string](diamond(), "A", "D", search.WithHeuristic(zero))
	require.NoError(t, err)
	plain, err := search.FindPath[string](diamond(), "A", "D")
	require.NoError(t, err)
	require.Equal(t, plain.Cost, withH.Cost)
	requireValidPath(t, diamond(), "A", withH.Path, withH.Cost)
}

func TestFindPath_Idempotent(t *testing.T) {
	g := diamond()
	first, err := search.FindPath[string](g, "A", "D")
	require.NoError(t, err)
	second, err := search.FindPath[string](g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, first.Cost, second.Cost)
	requireValidPath(t, g, "A", second.Path, second.Cost)
}

func TestDijkstra_TableOrderAndBackRefs(t *testing.T) {
	table := search.Dijkstra[string](diamond(), "A")
	require.Len(t, table, 4)

	// Finalization order is non-decreasing in distance.
	for i := 1; i < len(table); i++ {
		require.GreaterOrEqual(t, table[i].Meta.Dist, table[i-1].Meta.Dist)
	}

	// Only the source lacks a back-reference, and every back-reference
	// points at an earlier ordinal.
	require.Equal(t, "A", table[0].Node)
	require.Nil(t, table[0].Meta.Back)
	for i := 1; i < len(table); i++ {
		back := table[i].Meta.Back
		require.NotNil(t, back)
		require.Less(t, back.FromIndex, i)
		require.Equal(t, table[back.FromIndex].Meta.Dist+back.Weight, table[i].Meta.Dist)
	}
}

func TestDijkstra_OutDegreeObserved(t *testing.T) {
	table := search.Dijkstra[string](diamond(), "A")
	degrees := map[string]int{}
	for _, entry := range table {
		degrees[entry.Node] = entry.Meta.OutDegree
	}
	require.Equal(t, map[string]int{"A": 2, "B": 1, "C": 1, "D": 0}, degrees)
}

func TestSearch_LazyIteration(t *testing.T) {
	// Driving the iterator under a custom stopping predicate: stop as soon
	// as any node at distance ≥ 2 is finalized, without naming a target.
	it := search.Search[string](diamond(), "A")
	var stopped string
	for {
		entry, ok := it.Next()
		require.True(t, ok, "predicate should trip before exhaustion")
		if entry.Meta.Dist >= 2 {
			stopped = entry.Node

			break
		}
	}
	require.Equal(t, "C", stopped) // A(0), B(1), then C(2) via B
}

func TestSearch_InfiniteGraphStaysLazy(t *testing.T) {
	// The integer line: every n connects to n+1. Exhaustive search would
	// never terminate; taking a fixed number of steps must.
	line := intLine{}
	it := search.Search[int](line, 0)
	for want := 0; want < 100; want++ {
		entry, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, entry.Node)
		require.Equal(t, uint64(want), entry.Meta.Dist)
	}
}

// intLine is an implicit infinite graph over the non-negative integers.
type intLine struct{}

func (intLine) ConnectionsFrom(n int) []search.Edge[int] {
	return []search.Edge[int]{{To: n + 1, Weight: 1}}
}

func TestDepthFirst_EachNodeOnce(t *testing.T) {
	// A diamond with a cycle back to A: every node exactly once.
	g := diamond().add("D", "A", 1)
	nodes := search.DepthFirst[string](g, "A").Drain()
	require.ElementsMatch(t, []string{"A", "B", "C", "D"}, nodes)
}

func TestDepthFirst_MultipleInitial(t *testing.T) {
	g := newAdjGraph().add("A", "B", 1)
	nodes := search.DepthFirst[string](g, "A", "Z", "A").Drain()
	require.ElementsMatch(t, []string{"A", "B", "Z"}, nodes)
}

// requireValidPath checks the path-validity property: consecutive steps
// must be genuine edges with the claimed weights, and the weights must sum
// to the reported cost.
func requireValidPath(t *testing.T, g *adjGraph, source string, path []search.PathStep[string], cost uint64) {
	t.Helper()

	at := source
	var sum uint64
	for _, step := range path {
		found := false
		for _, edge := range g.ConnectionsFrom(at) {
			if edge.To == step.Node && edge.Weight == step.Weight {
				found = true

				break
			}
		}
		require.True(t, found, "step %s→%s (%d) is not an edge", at, step.Node, step.Weight)
		sum += step.Weight
		at = step.Node
	}
	require.Equal(t, cost, sum, "step weights must sum to the total cost")
}
