// Package search implements the lazy best-first iterator shared by the
// Dijkstra and A* entry points.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: improvements push duplicate
//     heap entries, and stale entries are discarded when popped (checked
//     against the finalized set).
//   - The heap orders by (dist+heuristic) ascending, breaking ties toward
//     lower dist, so among equally promising candidates the one closer to
//     being finalized wins. With a zero heuristic this stabilizes pure
//     Dijkstra under ties.
//   - Back-references are ordinal indices into the finalization order, not
//     node values, so path reconstruction needs no node lookups.
package search

import "container/heap"

// Iterator is the lazy search engine. Each Next call advances the
// algorithm by exactly one pop-and-expand step and yields the freshly
// finalized node with its metadata. On an infinite graph the iterator is
// itself infinite; abandoning it is cancellation, since all state is
// local to the Iterator.
//
// An Iterator is single-use and not safe for concurrent use; the graph is
// only read.
type Iterator[T comparable] struct {
	graph     Graph[T]
	heuristic Heuristic[T]
	frontier  frontierHeap[T]
	best      map[T]uint64 // best cost currently queued per node
	done      map[T]struct{}
	count     int // ordinal index of the next node to finalize
}

// Search builds a lazy Iterator rooted at source. With no options it runs
// pure Dijkstra; WithHeuristic upgrades it to A*. If the heuristic rejects
// the source, the iterator starts out exhausted.
//
// Complexity per Next call: O(out-degree · log(frontier)).
func Search[T comparable](g Graph[T], source T, opts ...Option[T]) *Iterator[T] {
	// 1) Resolve options: nil heuristic means Dijkstra.
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := cfg.Heuristic
	if h == nil {
		h = zeroHeuristic[T]
	}

	return newIterator(g, source, h)
}

// Dijkstra runs the engine to exhaustion over the entire component
// reachable from source and returns every node with its distance,
// back-reference and out-degree, in finalization order — that is, in
// non-decreasing distance from source.
//
// Use this when distances to all reachable nodes are needed rather than a
// single target. Callers with very large or infinite graphs should drive
// Search directly under their own stopping predicate instead.
//
// Complexity: O((V + E) log V), Memory: O(V + E).
func Dijkstra[T comparable](g Graph[T], source T) []Entry[T] {
	it := Search(g, source)

	var table []Entry[T]
	for {
		entry, ok := it.Next()
		if !ok {
			return table
		}
		table = append(table, entry)
	}
}

// newIterator seeds the frontier with the source at cost 0. A source the
// heuristic rejects is never enqueued, leaving the frontier empty.
func newIterator[T comparable](g Graph[T], source T, h Heuristic[T]) *Iterator[T] {
	it := &Iterator[T]{
		graph:     g,
		heuristic: h,
		frontier:  make(frontierHeap[T], 0, 1),
		best:      make(map[T]uint64),
		done:      make(map[T]struct{}),
	}
	heap.Init(&it.frontier)

	if estimate, ok := h(source); ok {
		heap.Push(&it.frontier, &frontierItem[T]{node: source, dist: 0, heur: estimate})
		it.best[source] = 0
	}

	return it
}

// Next finalizes and returns the cheapest frontier node. It reports false
// once the frontier is exhausted.
func (it *Iterator[T]) Next() (Entry[T], bool) {
	for it.frontier.Len() > 0 {
		// 1) Pop the minimum-priority entry: lowest dist+heuristic, ties
		//    broken by lowest dist.
		item := heap.Pop(&it.frontier).(*frontierItem[T])

		// 2) Skip stale duplicates left behind by lazy decrease-key.
		if _, finalized := it.done[item.node]; finalized {
			continue
		}

		// 3) The popped node is now finalized: assign the next ordinal
		//    index and record the out-degree observed at expansion time.
		connections := it.graph.ConnectionsFrom(item.node)
		index := it.count
		it.count++
		it.done[item.node] = struct{}{}

		// 4) Relax every outgoing edge.
		for _, edge := range connections {
			it.relax(index, item.dist, edge)
		}

		return Entry[T]{
			Node: item.node,
			Meta: Metadata{
				Dist:      item.dist,
				Heuristic: item.heur,
				Back:      item.back,
				OutDegree: len(connections),
			},
		}, true
	}

	return Entry[T]{}, false
}

// relax enqueues edge.To with an improved cost, or leaves it alone when
// the candidate is no better than what the frontier already holds.
func (it *Iterator[T]) relax(fromIndex int, fromDist uint64, edge Edge[T]) {
	// Finalized nodes are never improved again.
	if _, finalized := it.done[edge.To]; finalized {
		return
	}

	// Prune nodes the heuristic marks as dead ends.
	estimate, ok := it.heuristic(edge.To)
	if !ok {
		return
	}

	// Push-or-improve: only a strictly better cost earns a new heap entry.
	// The displaced duplicate stays queued and is discarded at pop time.
	candidate := fromDist + edge.Weight
	if queued, seen := it.best[edge.To]; seen && queued <= candidate {
		return
	}
	it.best[edge.To] = candidate

	heap.Push(&it.frontier, &frontierItem[T]{
		node: edge.To,
		dist: candidate,
		heur: estimate,
		back: &BackRef{FromIndex: fromIndex, Weight: edge.Weight},
	})
}

// zeroHeuristic is the Dijkstra default: every node is worth exploring and
// nothing is known about remaining cost.
func zeroHeuristic[T comparable](T) (uint64, bool) { return 0, true }

// frontierItem is one queued (node, cost) candidate. A node may appear
// several times with different costs; only the first pop survives.
type frontierItem[T comparable] struct {
	node T
	dist uint64
	heur uint64
	back *BackRef
}

// frontierHeap is a min-heap of *frontierItem ordered by dist+heur
// ascending, with ties broken toward lower dist.
type frontierHeap[T comparable] []*frontierItem[T]

// Len returns the number of queued candidates.
func (h frontierHeap[T]) Len() int { return len(h) }

// Less prefers the lowest estimated total, then the lowest paid cost.
func (h frontierHeap[T]) Less(i, j int) bool {
	ti, tj := h[i].dist+h[i].heur, h[j].dist+h[j].heur
	if ti != tj {
		return ti < tj
	}

	return h[i].dist < h[j].dist
}

// Swap swaps two candidates.
func (h frontierHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a candidate; called by heap.Push.
func (h *frontierHeap[T]) Push(x any) { *h = append(*h, x.(*frontierItem[T])) }

// Pop removes and returns the last candidate; called by heap.Pop.
func (h *frontierHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
