// Package adventkit is a toolkit for solving calendar-style programming
// puzzles: a generic best-first search engine plus the small data types
// that puzzle solutions lean on every December.
//
// 🧭 What is adventkit?
//
//	A generics-first library that brings together:
//		• Graph search: lazy Dijkstra / A* over implicit, caller-defined graphs
//		• Path recovery: ordinal back-references, loop-safe reconstruction
//		• Grids: a flat-indexed 2D container with Rook/Queen adjacency
//		• Vectors: integer 2D/3D math, directions, rotations
//		• Fractions: exact machine-word rational arithmetic
//		• Harness: puzzle registration, input sources, a small CLI
//
// ✨ Why choose adventkit?
//
//   - Implicit graphs – nodes are any comparable value; edges are computed
//     on demand, so infinite state spaces search lazily
//   - One engine – Dijkstra and A* share a single iterator, selected by a
//     pluggable heuristic
//   - Honest failures – "no path", "heuristic rejects the start" and
//     internal bookkeeping bugs are distinct, inspectable errors
//
// Everything is organized under flat subpackages:
//
//	search/ — the best-first engine: Iterator, FindPath, ShortestPath, Dijkstra
//	grid/   — Map[T], Pos, adjacency, and a cost-grid adapter for search
//	vec/    — V2/V3 integer vectors, Direction, 2×2 rotations
//	frac/   — normalized rational numbers
//	runner/ — puzzle registry, dispatch and cached input sources
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     1
//	    │     │
//	    C──1──D
//
//	shortest A→D is A→B→D with cost 2, not A→C→D with cost 6.
//
//	go get github.com/arreto/adventkit
package adventkit
