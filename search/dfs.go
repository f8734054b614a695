// Package search: unweighted depth-first reachability.
package search

// DepthFirstIterator lazily enumerates every node reachable from a set of
// initial nodes, each exactly once, even when multiple paths reach it.
// Edge weights are ignored; this is pure reachability, useful for flood
// fills and component discovery over implicit graphs.
type DepthFirstIterator[T comparable] struct {
	graph   Graph[T]
	toVisit []T
	seen    map[T]struct{}
}

// DepthFirst builds a lazy depth-first iterator over the nodes reachable
// from the initial set.
//
// Complexity: O(V + E) over a full drain, Memory: O(V).
func DepthFirst[T comparable](g Graph[T], initial ...T) *DepthFirstIterator[T] {
	it := &DepthFirstIterator[T]{
		graph: g,
		seen:  make(map[T]struct{}, len(initial)),
	}
	for _, node := range initial {
		if _, ok := it.seen[node]; ok {
			continue
		}
		it.seen[node] = struct{}{}
		it.toVisit = append(it.toVisit, node)
	}

	return it
}

// Next returns the next reachable node, or false once every reachable node
// has been produced. Nodes are marked seen when discovered, not when
// visited, so no node is ever stacked twice.
func (it *DepthFirstIterator[T]) Next() (T, bool) {
	if len(it.toVisit) == 0 {
		var zero T

		return zero, false
	}

	visiting := it.toVisit[len(it.toVisit)-1]
	it.toVisit = it.toVisit[:len(it.toVisit)-1]

	for _, edge := range it.graph.ConnectionsFrom(visiting) {
		if _, ok := it.seen[edge.To]; ok {
			continue
		}
		it.seen[edge.To] = struct{}{}
		it.toVisit = append(it.toVisit, edge.To)
	}

	return visiting, true
}

// Drain consumes the iterator and returns the remaining nodes in visit
// order.
func (it *DepthFirstIterator[T]) Drain() []T {
	var nodes []T
	for {
		node, ok := it.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, node)
	}
}
