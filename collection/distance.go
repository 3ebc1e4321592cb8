package collection

import (
	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/errors"
)

// DistanceTo returns the number of steps from the first index of c to i.
//
// i must be a valid index of c, at or after StartIndex. The cost is O(1) for
// RandomAccess collections and O(k) otherwise, where k is the result.
func DistanceTo[E any](c Collection[E], i Index) int {
	assert.Contract(i >= c.StartIndex() && i <= c.EndIndex(), errors.ErrIndexOutOfRange,
		"index %d outside [%d, %d]", i, c.StartIndex(), c.EndIndex())

	return Distance(c, c.StartIndex(), i)
}

// Distance returns the number of steps from one index of c to a later one.
func Distance[E any](c Collection[E], from, to Index) int {
	assert.Contract(from <= to, errors.ErrIndexOutOfRange, "distance from %d back to %d", from, to)

	if ra, ok := randomAccess(c); ok {
		return ra.Distance(from, to)
	}

	steps := 0
	for i := from; i < to; i = c.IndexAfter(i) {
		steps++
	}

	return steps
}

// Count returns the number of elements in c.
func Count[E any](c Collection[E]) int {
	return Distance(c, c.StartIndex(), c.EndIndex())
}

// IsEmpty reports whether c has no elements.
func IsEmpty[E any](c Collection[E]) bool {
	return c.StartIndex() == c.EndIndex()
}

// IndexOffsetBy advances i by n steps without passing limit.
//
// It returns the advanced index and true, or limit and false when the
// advance would go beyond limit. Landing exactly on limit counts as success.
// A limit behind i does not restrict the advance. n must not be negative.
func IndexOffsetBy[E any](c Collection[E], i Index, n int, limit Index) (Index, bool) {
	assert.Contract(n >= 0, errors.ErrIndexOutOfRange, "negative offset %d", n)

	if ra, ok := randomAccess(c); ok {
		if limit >= i && ra.Distance(i, limit) < n {
			return limit, false
		}

		return ra.IndexOffsetBy(i, n), true
	}

	for ; n > 0; n-- {
		if i == limit {
			return limit, false
		}

		i = c.IndexAfter(i)
	}

	return i, true
}
