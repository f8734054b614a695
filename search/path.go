// Package search: target-directed entry points and path reconstruction.
//
// FindPath drives the lazy Iterator until the target is finalized, then
// converts the ordinal back-reference chain into an ordered path. The
// reconstruction walks backward from the target, taking each visited slot
// exactly once so a corrupted chain surfaces as an error instead of an
// infinite loop.
package search

import "errors"

// FindPath runs a target-directed search from source and reconstructs the
// shortest path. It is the rich variant: the four outcomes are distinct.
//
// Returns:
//
//   - (Result with Path and Cost, nil) on success. The path includes the
//     target but not the source; source == target succeeds with an empty
//     path and cost 0.
//   - (zero Result, ErrHeuristicFailsOnStart) when the heuristic rejects
//     the source before any search begins.
//   - (Result with Reachable, ErrNoPathToTarget) when the frontier is
//     exhausted; Reachable holds every node that was finalized.
//   - (Result, ErrInvalidReverseIndex or ErrCircularReversePath) on an
//     internal bookkeeping violation. These indicate an engine bug and are
//     never collapsed into "no path".
//
// The heuristic is taken from WithHeuristic if given, else from the
// graph's HeuristicBetween if it implements HeuristicGraph, else zero
// (pure Dijkstra).
//
// Complexity: O((V + E) log V) to the target, plus O(path) reconstruction.
func FindPath[T comparable](g Graph[T], source, target T, opts ...Option[T]) (Result[T], error) {
	// 1) Resolve the heuristic: explicit option > graph capability > zero.
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := cfg.Heuristic
	if h == nil {
		if hg, ok := g.(HeuristicGraph[T]); ok {
			h = func(node T) (uint64, bool) { return hg.HeuristicBetween(node, target) }
		} else {
			h = zeroHeuristic[T]
		}
	}

	// 2) A heuristic that rejects the source is a distinct outcome, not a
	//    silent "no path".
	if _, ok := h(source); !ok {
		return Result[T]{}, ErrHeuristicFailsOnStart
	}

	// 3) Run the engine until the target is finalized or the frontier
	//    empties. Entries are collected in finalization order, so the
	//    slice position of each entry is its ordinal index.
	it := newIterator(g, source, h)
	var finalized []Entry[T]
	targetIndex := -1
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		finalized = append(finalized, entry)
		if entry.Node == target {
			targetIndex = len(finalized) - 1

			break
		}
	}

	// 4) Frontier exhausted: report the reachable component for diagnostics.
	if targetIndex < 0 {
		reachable := make([]T, len(finalized))
		for i, entry := range finalized {
			reachable[i] = entry.Node
		}

		return Result[T]{Reachable: reachable, Expanded: len(finalized)}, ErrNoPathToTarget
	}

	// 5) Turn back-references into an ordered path.
	path, err := reconstruct(finalized, targetIndex)
	if err != nil {
		return Result[T]{Expanded: len(finalized)}, err
	}

	return Result[T]{
		Path:     path,
		Cost:     finalized[targetIndex].Meta.Dist,
		Expanded: len(finalized),
	}, nil
}

// ShortestPath is the simple wrapper around FindPath for callers that only
// care whether a path exists. "Heuristic rejects the start" and "frontier
// exhausted" both collapse into ErrNoPathToTarget; the internal
// reconstruction errors pass through verbatim, since they are defects
// rather than legitimate not-found outcomes.
//
// The returned path includes the target but not the source; the step
// weights sum to the returned total cost.
func ShortestPath[T comparable](g Graph[T], source, target T, opts ...Option[T]) ([]PathStep[T], uint64, error) {
	result, err := FindPath(g, source, target, opts...)
	switch {
	case err == nil:
		return result.Path, result.Cost, nil
	case errors.Is(err, ErrHeuristicFailsOnStart), errors.Is(err, ErrNoPathToTarget):
		return nil, 0, ErrNoPathToTarget
	default:
		return nil, 0, err
	}
}

// reconstruct converts the back-reference chain ending at
// finalized[target] into an ordered path from the source. Each slot may be
// visited at most once: an index outside the table yields
// ErrInvalidReverseIndex, a revisited slot ErrCircularReversePath. The
// source slot terminates the walk (it alone has a nil back-reference) and
// is not part of the returned path.
func reconstruct[T comparable](finalized []Entry[T], target int) ([]PathStep[T], error) {
	taken := make([]bool, len(finalized))

	// Walk backward from the target, collecting one step per back-reference.
	var backward []PathStep[T]
	for index := target; ; {
		if index < 0 || index >= len(finalized) {
			return nil, ErrInvalidReverseIndex
		}
		if taken[index] {
			return nil, ErrCircularReversePath
		}
		taken[index] = true

		entry := finalized[index]
		if entry.Meta.Back == nil {
			break
		}
		backward = append(backward, PathStep[T]{Node: entry.Node, Weight: entry.Meta.Back.Weight})
		index = entry.Meta.Back.FromIndex
	}

	// The walk ran target→source; the caller wants source→target.
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}

	return backward, nil
}
