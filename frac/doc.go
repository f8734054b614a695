// Package frac provides exact rational arithmetic over machine-word
// integers for puzzle math that must not lose precision to floats:
// line intersections, hailstone trajectories, gear ratios.
//
// Every Frac returned by this package is normalized: the numerator and
// denominator share no common factor, the denominator is positive, and
// zero is always 0/1. Normalized values are comparable with ==, so Frac
// works directly as a map key.
//
// Arithmetic stays in int64 and will overflow on sufficiently large
// operands; this is the original harness's trade-off of speed over
// arbitrary precision. Reach for math/big when inputs exceed ~10^9.
package frac
