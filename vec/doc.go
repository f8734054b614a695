// Package vec provides small integer vector math for puzzle geometry:
// generic 2D/3D vectors, cardinal directions, and 2×2 rotation matrices.
//
// Everything is a value type over a signed integer element chosen by the
// caller (int for indexing, int64 for big coordinate spaces), so vectors
// are comparable and usable directly as map keys and search-engine nodes.
//
// Conventions match text-grid puzzles: x grows rightward, y grows
// downward, so Up is (0,-1) and a clockwise turn maps Up to Right.
//
// The Manhattan and Chebyshev metrics return unsigned values, ready to use
// as admissible search heuristics on unit-cost grids.
package vec
