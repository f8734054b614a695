// Package vec implements the V2 and V3 value types.
package vec

import "golang.org/x/exp/constraints"

// V2 is a 2D vector over a signed integer element type. V2 values are
// comparable, so they work directly as map keys and search nodes.
type V2[T constraints.Signed] struct {
	X, Y T
}

// V3 is a 3D vector over a signed integer element type.
type V3[T constraints.Signed] struct {
	X, Y, Z T
}

// Add returns v + o.
func (v V2[T]) Add(o V2[T]) V2[T] { return V2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v V2[T]) Sub(o V2[T]) V2[T] { return V2[T]{v.X - o.X, v.Y - o.Y} }

// Neg returns -v.
func (v V2[T]) Neg() V2[T] { return V2[T]{-v.X, -v.Y} }

// Scale returns v scaled by k.
func (v V2[T]) Scale(k T) V2[T] { return V2[T]{v.X * k, v.Y * k} }

// Dot returns the dot product of v and o.
func (v V2[T]) Dot(o V2[T]) T { return v.X*o.X + v.Y*o.Y }

// Manhattan returns the L1 distance between v and o.
func (v V2[T]) Manhattan(o V2[T]) uint64 {
	return absDiff(v.X, o.X) + absDiff(v.Y, o.Y)
}

// Chebyshev returns the L∞ distance between v and o: the number of king
// moves separating them.
func (v V2[T]) Chebyshev(o V2[T]) uint64 {
	return maxU(absDiff(v.X, o.X), absDiff(v.Y, o.Y))
}

// Add returns v + o.
func (v V3[T]) Add(o V3[T]) V3[T] { return V3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v V3[T]) Sub(o V3[T]) V3[T] { return V3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns -v.
func (v V3[T]) Neg() V3[T] { return V3[T]{-v.X, -v.Y, -v.Z} }

// Scale returns v scaled by k.
func (v V3[T]) Scale(k T) V3[T] { return V3[T]{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of v and o.
func (v V3[T]) Dot(o V3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Manhattan returns the L1 distance between v and o.
func (v V3[T]) Manhattan(o V3[T]) uint64 {
	return absDiff(v.X, o.X) + absDiff(v.Y, o.Y) + absDiff(v.Z, o.Z)
}

// Chebyshev returns the L∞ distance between v and o.
func (v V3[T]) Chebyshev(o V3[T]) uint64 {
	return maxU(maxU(absDiff(v.X, o.X), absDiff(v.Y, o.Y)), absDiff(v.Z, o.Z))
}

// absDiff computes |a-b| as an unsigned distance.
func absDiff[T constraints.Signed](a, b T) uint64 {
	if a < b {
		a, b = b, a
	}

	return uint64(a - b)
}

func maxU(a, b uint64) uint64 {
	if a > b {
		return a
	}

	return b
}
