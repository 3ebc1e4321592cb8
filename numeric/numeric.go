// Package numeric classifies element types by how they add and divide.
//
// A kind is a zero-size value chosen statically by the caller. It supplies the
// additive identity, addition, and (for full kinds) the division rule used by
// averaging:
//
//   - Integer truncates toward zero, like Go's integer division.
//   - Float divides in floating point.
//   - Decimal divides exactly (to decimal.DivisionPrecision digits).
//
// Builtin covers every built-in number for summation only, because the
// meaning of its quotient depends on the type argument.
package numeric

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Real is satisfied by every built-in integer and floating-point type.
type Real interface {
	constraints.Integer | constraints.Float
}

// Additive supplies an identity and an addition for T.
type Additive[T any] interface {
	Zero() T
	Add(a, b T) T
}

// Kind is an Additive that also knows how to divide a total by an element count.
type Kind[T any] interface {
	Additive[T]

	// Quotient divides total by count. Count is always positive.
	Quotient(total T, count int) T
}

// Builtin is the additive kind of any built-in number.
type Builtin[T Real] struct{}

var _ Additive[int] = Builtin[int]{}

func (Builtin[T]) Zero() T {
	return 0
}

func (Builtin[T]) Add(a, b T) T {
	return a + b
}

// Integer is the kind of integer elements. Its quotient truncates.
type Integer[T constraints.Integer] struct{}

var _ Kind[int64] = Integer[int64]{}

func (Integer[T]) Zero() T {
	return 0
}

func (Integer[T]) Add(a, b T) T {
	return a + b
}

// Quotient divides in 64 bits, as count need not fit in T.
func (Integer[T]) Quotient(total T, count int) T {
	if ^T(0) < 0 {
		return T(int64(total) / int64(count))
	}

	return T(uint64(total) / uint64(count))
}

// Float is the kind of floating-point elements.
type Float[T constraints.Float] struct{}

var _ Kind[float64] = Float[float64]{}

func (Float[T]) Zero() T {
	return 0
}

func (Float[T]) Add(a, b T) T {
	return a + b
}

func (Float[T]) Quotient(total T, count int) T {
	return total / T(count)
}

// Decimal is the kind of arbitrary-precision decimal elements.
type Decimal struct{}

var _ Kind[decimal.Decimal] = Decimal{}

func (Decimal) Zero() decimal.Decimal {
	return decimal.Zero
}

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

func (Decimal) Quotient(total decimal.Decimal, count int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(count)))
}

// ToFloat widens an integer to a floating-point type.
func ToFloat[F constraints.Float, T constraints.Integer](v T) F {
	return F(v)
}
