// Package frac implements the normalized Frac value type.
package frac

import (
	"errors"
	"fmt"
)

// Sentinel errors for fraction construction and arithmetic.
var (
	// ErrZeroDenominator indicates an attempt to build a fraction with
	// denominator zero.
	ErrZeroDenominator = errors.New("frac: denominator must be non-zero")
	// ErrDivByZero indicates division by a zero-valued fraction.
	ErrDivByZero = errors.New("frac: division by zero fraction")
)

// Frac is a rational number Num/Den. Values produced by this package are
// always normalized; construct via New (or FromInt) rather than struct
// literals to keep == comparisons meaningful.
type Frac struct {
	Num int64
	Den int64
}

// New returns the normalized fraction num/den.
func New(num, den int64) (Frac, error) {
	if den == 0 {
		return Frac{}, ErrZeroDenominator
	}

	return normalize(num, den), nil
}

// FromInt returns the fraction v/1.
func FromInt(v int64) Frac { return Frac{Num: v, Den: 1} }

// normalize reduces by the gcd, forces the denominator positive, and
// canonicalizes zero to 0/1.
func normalize(num, den int64) Frac {
	if num == 0 {
		return Frac{Num: 0, Den: 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)

	return Frac{Num: num / g, Den: den / g}
}

// gcd returns the greatest common divisor of |a| and |b|.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Add returns f + o.
func (f Frac) Add(o Frac) Frac {
	return normalize(f.Num*o.Den+o.Num*f.Den, f.Den*o.Den)
}

// Sub returns f - o.
func (f Frac) Sub(o Frac) Frac {
	return normalize(f.Num*o.Den-o.Num*f.Den, f.Den*o.Den)
}

// Mul returns f * o.
func (f Frac) Mul(o Frac) Frac {
	return normalize(f.Num*o.Num, f.Den*o.Den)
}

// Div returns f / o, or ErrDivByZero when o is zero.
func (f Frac) Div(o Frac) (Frac, error) {
	if o.Num == 0 {
		return Frac{}, ErrDivByZero
	}

	return normalize(f.Num*o.Den, f.Den*o.Num), nil
}

// Neg returns -f.
func (f Frac) Neg() Frac { return Frac{Num: -f.Num, Den: f.Den} }

// IsZero reports whether f equals zero.
func (f Frac) IsZero() bool { return f.Num == 0 }

// IsInt reports whether f is a whole number.
func (f Frac) IsInt() bool { return f.Den == 1 }

// Cmp compares f and o: -1 if f < o, 0 if equal, +1 if f > o.
func (f Frac) Cmp(o Frac) int {
	lhs, rhs := f.Num*o.Den, o.Num*f.Den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// RoundNearest returns the nearest integer to f, rounding half away from
// zero toward positive infinity (floor of f + 1/2).
func (f Frac) RoundNearest() int64 {
	return floorDiv(2*f.Num+f.Den, 2*f.Den)
}

// floorDiv is division rounding toward negative infinity, which Go's
// truncating / does not provide for negative operands.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// String renders "n" for whole numbers and "n/d" otherwise.
func (f Frac) String() string {
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}

	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}
