package collection

import "iter"

// Indices returns the valid indices of c in order, excluding EndIndex.
func Indices[E any](c Collection[E]) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for i, end := c.StartIndex(), c.EndIndex(); i < end; i = c.IndexAfter(i) {
			if !yield(i) {
				return
			}
		}
	}
}

// Elements returns the elements of c in order.
func Elements[E any](c Collection[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := range Indices(c) {
			if !yield(c.At(i)) {
				return
			}
		}
	}
}

// Indexed pairs every element of c with its index. The indices are the
// container's own, so for a SubSequence they continue from the base
// collection rather than restarting at zero.
func Indexed[E any](c Collection[E]) iter.Seq2[Index, E] {
	return func(yield func(Index, E) bool) {
		for i := range Indices(c) {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

// ForEachIndexed calls body with every index and element of c, stopping at
// and returning the first error body returns.
func ForEachIndexed[E any](c Collection[E], body func(Index, E) error) error {
	for i, elem := range Indexed(c) {
		if err := body(i, elem); err != nil {
			return err
		}
	}

	return nil
}

// Collect copies the elements of c into a new slice.
func Collect[E any](c Collection[E]) []E {
	var out []E
	if ra, ok := randomAccess(c); ok {
		out = make([]E, 0, ra.Distance(c.StartIndex(), c.EndIndex()))
	}

	for elem := range Elements(c) {
		out = append(out, elem)
	}

	return out
}

// reversedIndices yields the valid indices of c from last to first. It steps
// backward on Bidirectional collections and otherwise materializes the
// forward indices first.
func reversedIndices[E any](c Collection[E]) iter.Seq[Index] {
	if bidi, ok := bidirectional(c); ok {
		return func(yield func(Index) bool) {
			for i, start := c.EndIndex(), c.StartIndex(); i > start; {
				i = bidi.IndexBefore(i)
				if !yield(i) {
					return
				}
			}
		}
	}

	return func(yield func(Index) bool) {
		var forward []Index
		for i := range Indices(c) {
			forward = append(forward, i)
		}

		for k := len(forward) - 1; k >= 0; k-- {
			if !yield(forward[k]) {
				return
			}
		}
	}
}
