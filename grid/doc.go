// Package grid provides a generic rectangular 2D container backed by a
// flat slice, plus a cost-grid adapter that plugs straight into the search
// engine.
//
// A position on a Map is an opaque flat index (Pos), comparable and
// hashable, which makes it a natural search-engine node: two Pos values
// from the same Map are equal exactly when they name the same cell, and a
// Pos costs one machine word to copy, hash and store.
//
// Coordinates follow puzzle-input convention: x grows rightward along a
// line of text, y grows downward with each line, (0,0) is the top-left
// cell.
//
// Adjacency:
//
//   - Rook      — the 4 orthogonal neighbors.
//   - Queen     — the 8 orthogonal + diagonal neighbors.
//   - Region3x3 — the full 3×3 block including the cell itself.
//
// Neighbors outside the map are silently clipped, so edge and corner cells
// simply yield fewer positions.
//
// CostGraph adapts a Map[uint64] of per-cell entry costs into a
// search.HeuristicGraph[Pos] with Rook movement and a Manhattan-distance
// heuristic — the classic "risk level grid" shape.
package grid
