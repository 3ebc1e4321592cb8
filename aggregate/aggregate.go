// Package aggregate sums and averages sequences of numbers.
//
// Every function consumes an iter.Seq in a single pass, so it works with any
// collection (via collection.Elements), any slice (via slices.Values), or any
// other sequence. The By variants first project each element through a
// function, which is how records are aggregated by one of their fields.
//
// The division rule of an average is fixed by the function, not discovered at
// run time:
//
//   - AverageInt truncates, like integer division.
//   - AverageIntAsFloat sums as integers and divides in floating point.
//   - AverageFloat divides in floating point.
//   - AverageDecimal divides exactly.
//
// The sum and the average of an empty sequence are both zero.
package aggregate

import (
	"iter"

	"github.com/amp-labs/amp-collections/numeric"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// SumWith adds up the projections of every element using kind.
func SumWith[E, T any](seq iter.Seq[E], kind numeric.Additive[T], project func(E) T) T { //nolint:ireturn
	total, _ := fold(seq, kind, project)

	return total
}

// AverageWith divides the sum of the projections by the element count, using
// kind's division rule. An empty sequence averages to kind's zero.
func AverageWith[E, T any](seq iter.Seq[E], kind numeric.Kind[T], project func(E) T) T { //nolint:ireturn
	total, count := fold(seq, kind, project)
	if count == 0 {
		return kind.Zero()
	}

	return kind.Quotient(total, count)
}

// Sum returns the sum of seq.
func Sum[T numeric.Real](seq iter.Seq[T]) T {
	return SumWith(seq, numeric.Builtin[T]{}, identity[T])
}

// SumBy returns the sum of project over seq.
func SumBy[E any, T numeric.Real](seq iter.Seq[E], project func(E) T) T {
	return SumWith(seq, numeric.Builtin[T]{}, project)
}

// SumDecimal returns the exact sum of seq.
func SumDecimal(seq iter.Seq[decimal.Decimal]) decimal.Decimal {
	return SumWith(seq, numeric.Decimal{}, identity[decimal.Decimal])
}

// SumDecimalBy returns the exact sum of project over seq.
func SumDecimalBy[E any](seq iter.Seq[E], project func(E) decimal.Decimal) decimal.Decimal {
	return SumWith(seq, numeric.Decimal{}, project)
}

// AverageInt returns the truncated mean of seq.
func AverageInt[T constraints.Integer](seq iter.Seq[T]) T {
	return AverageWith(seq, numeric.Integer[T]{}, identity[T])
}

// AverageIntBy returns the truncated mean of project over seq.
func AverageIntBy[E any, T constraints.Integer](seq iter.Seq[E], project func(E) T) T {
	return AverageWith(seq, numeric.Integer[T]{}, project)
}

// AverageIntAsFloat returns the mean of integers as a floating-point value.
// The elements are summed as integers before dividing.
func AverageIntAsFloat[F constraints.Float, T constraints.Integer](seq iter.Seq[T]) F {
	return AverageIntAsFloatBy[F](seq, identity[T])
}

// AverageIntAsFloatBy returns the mean of integer projections as a
// floating-point value.
func AverageIntAsFloatBy[F constraints.Float, E any, T constraints.Integer](seq iter.Seq[E], project func(E) T) F {
	total, count := fold(seq, numeric.Integer[T]{}, project)
	if count == 0 {
		return numeric.Float[F]{}.Zero()
	}

	return numeric.Float[F]{}.Quotient(numeric.ToFloat[F](total), count)
}

// AverageFloat returns the mean of seq.
func AverageFloat[T constraints.Float](seq iter.Seq[T]) T {
	return AverageWith(seq, numeric.Float[T]{}, identity[T])
}

// AverageFloatBy returns the mean of project over seq.
func AverageFloatBy[E any, T constraints.Float](seq iter.Seq[E], project func(E) T) T {
	return AverageWith(seq, numeric.Float[T]{}, project)
}

// AverageDecimal returns the exact mean of seq.
func AverageDecimal(seq iter.Seq[decimal.Decimal]) decimal.Decimal {
	return AverageWith(seq, numeric.Decimal{}, identity[decimal.Decimal])
}

// AverageDecimalBy returns the exact mean of project over seq.
func AverageDecimalBy[E any](seq iter.Seq[E], project func(E) decimal.Decimal) decimal.Decimal {
	return AverageWith(seq, numeric.Decimal{}, project)
}

func fold[E, T any](seq iter.Seq[E], kind numeric.Additive[T], project func(E) T) (T, int) {
	total := kind.Zero()
	count := 0

	for elem := range seq {
		total = kind.Add(total, project(elem))
		count++
	}

	return total, count
}

func identity[T any](v T) T { //nolint:ireturn
	return v
}
