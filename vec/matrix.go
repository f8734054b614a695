// Package vec: 2×2 integer matrices for planar rotations.
package vec

import "golang.org/x/exp/constraints"

// M2 is a 2×2 matrix in row-major order.
type M2[T constraints.Signed] struct {
	A, B T // first row
	C, D T // second row
}

// Identity returns the identity matrix.
func Identity[T constraints.Signed]() M2[T] {
	return M2[T]{A: 1, D: 1}
}

// Rot90CW returns the matrix rotating vectors 90° clockwise in screen
// orientation (y downward).
func Rot90CW[T constraints.Signed]() M2[T] {
	return M2[T]{B: -1, C: 1}
}

// Rot90CCW returns the matrix rotating vectors 90° counterclockwise in
// screen orientation.
func Rot90CCW[T constraints.Signed]() M2[T] {
	return M2[T]{B: 1, C: -1}
}

// MulVec applies the matrix to a vector.
func (m M2[T]) MulVec(v V2[T]) V2[T] {
	return V2[T]{m.A*v.X + m.B*v.Y, m.C*v.X + m.D*v.Y}
}

// Mul composes two matrices; (m.Mul(n)).MulVec(v) == m.MulVec(n.MulVec(v)).
func (m M2[T]) Mul(n M2[T]) M2[T] {
	return M2[T]{
		A: m.A*n.A + m.B*n.C, B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C, D: m.C*n.B + m.D*n.D,
	}
}
