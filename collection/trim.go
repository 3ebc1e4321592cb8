package collection

import (
	"github.com/amp-labs/amp-collections/errors"
)

// FirstIndexWhere returns the index of the first element of c satisfying pred.
func FirstIndexWhere[E any](c Collection[E], pred func(E) bool) (Index, bool) {
	i, ok, _ := FirstIndexWhereErr(c, infallible(pred))

	return i, ok
}

// FirstIndexWhereErr is FirstIndexWhere for a predicate that can fail. The
// scan stops at the first failure, which is returned wrapped with
// errors.ErrPredicate; the predicate's own error still matches errors.Is.
func FirstIndexWhereErr[E any](c Collection[E], pred func(E) (bool, error)) (Index, bool, error) {
	for i := range Indices(c) {
		match, err := pred(c.At(i))
		if err != nil {
			return c.EndIndex(), false, errors.Predicate(err)
		}

		if match {
			return i, true, nil
		}
	}

	return c.EndIndex(), false, nil
}

// LastIndexWhere returns the index of the last element of c satisfying pred.
func LastIndexWhere[E any](c Collection[E], pred func(E) bool) (Index, bool) {
	i, ok, _ := LastIndexWhereErr(c, infallible(pred))

	return i, ok
}

// LastIndexWhereErr is LastIndexWhere for a predicate that can fail. Elements
// are tested from the back, and the scan stops at the first failure.
func LastIndexWhereErr[E any](c Collection[E], pred func(E) (bool, error)) (Index, bool, error) {
	for i := range reversedIndices(c) {
		match, err := pred(c.At(i))
		if err != nil {
			return c.StartIndex(), false, errors.Predicate(err)
		}

		if match {
			return i, true, nil
		}
	}

	return c.StartIndex(), false, nil
}

// DropFirstWhile returns the view of c that remains after skipping the
// leading elements satisfying pred.
func DropFirstWhile[E any](c Collection[E], pred func(E) bool) SubSequence[E] {
	sub, _ := DropFirstWhileErr(c, infallible(pred))

	return sub
}

// DropFirstWhileErr is DropFirstWhile for a predicate that can fail.
func DropFirstWhileErr[E any](c Collection[E], pred func(E) (bool, error)) (SubSequence[E], error) {
	cut, found, err := FirstIndexWhereErr(c, negate(pred))
	if err != nil {
		return SubSequence[E]{}, err
	}

	if !found {
		return Slice(c, c.EndIndex(), c.EndIndex()), nil
	}

	return Slice(c, cut, c.EndIndex()), nil
}

// DropLastWhile returns the view of c that remains after cutting the trailing
// elements satisfying pred. When every element satisfies pred the result is
// the empty view at the start of c.
func DropLastWhile[E any](c Collection[E], pred func(E) bool) SubSequence[E] {
	sub, _ := DropLastWhileErr(c, infallible(pred))

	return sub
}

// DropLastWhileErr is DropLastWhile for a predicate that can fail. A failure
// aborts the scan and no view is returned.
func DropLastWhileErr[E any](c Collection[E], pred func(E) (bool, error)) (SubSequence[E], error) {
	cut, found, err := LastIndexWhereErr(c, negate(pred))
	if err != nil {
		return SubSequence[E]{}, err
	}

	if !found {
		return Slice(c, c.StartIndex(), c.StartIndex()), nil
	}

	return Slice(c, c.StartIndex(), c.IndexAfter(cut)), nil
}

// RemoveWhile removes the leading elements of c satisfying pred. If every
// element does, c is emptied.
func RemoveWhile[E any](c RangeReplaceable[E], pred func(E) bool) {
	_ = RemoveWhileErr(c, infallible(pred))
}

// RemoveWhileErr is RemoveWhile for a predicate that can fail. The cut point
// is found before anything is removed, so a failing predicate leaves c
// exactly as it was.
func RemoveWhileErr[E any](c RangeReplaceable[E], pred func(E) (bool, error)) error {
	cut, found, err := FirstIndexWhereErr(c, negate(pred))
	if err != nil {
		return err
	}

	if !found {
		c.RemoveAll()

		return nil
	}

	if start := c.StartIndex(); cut != start {
		c.RemoveSubrange(start, cut)
	}

	return nil
}

// RemoveLastWhile removes the trailing elements of c satisfying pred. If every
// element does, c is emptied.
func RemoveLastWhile[E any](c RangeReplaceable[E], pred func(E) bool) {
	_ = RemoveLastWhileErr(c, infallible(pred))
}

// RemoveLastWhileErr is RemoveLastWhile for a predicate that can fail. As with
// RemoveWhileErr, c is only modified once the whole scan has succeeded.
func RemoveLastWhileErr[E any](c RangeReplaceable[E], pred func(E) (bool, error)) error {
	cut, found, err := LastIndexWhereErr(c, negate(pred))
	if err != nil {
		return err
	}

	if !found {
		c.RemoveAll()

		return nil
	}

	if lo, end := c.IndexAfter(cut), c.EndIndex(); lo != end {
		c.RemoveSubrange(lo, end)
	}

	return nil
}

func infallible[E any](pred func(E) bool) func(E) (bool, error) {
	return func(elem E) (bool, error) {
		return pred(elem), nil
	}
}

func negate[E any](pred func(E) (bool, error)) func(E) (bool, error) {
	return func(elem E) (bool, error) {
		match, err := pred(elem)

		return !match, err
	}
}
