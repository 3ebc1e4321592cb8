package collection_test

import (
	"slices"

	"github.com/amp-labs/amp-collections/collection"
)

// forwardOnly is a collection that can only step forward, counting every
// step it takes.
type forwardOnly[E any] struct {
	elems []E
	steps int
}

var _ collection.RangeReplaceable[int] = (*forwardOnly[int])(nil)

func newForwardOnly[E any](elems ...E) *forwardOnly[E] {
	return &forwardOnly[E]{elems: elems}
}

func (f *forwardOnly[E]) StartIndex() collection.Index {
	return 0
}

func (f *forwardOnly[E]) EndIndex() collection.Index {
	return collection.Index(len(f.elems))
}

func (f *forwardOnly[E]) IndexAfter(i collection.Index) collection.Index {
	f.steps++

	return i + 1
}

func (f *forwardOnly[E]) At(i collection.Index) E {
	return f.elems[i]
}

func (f *forwardOnly[E]) RemoveSubrange(lo, hi collection.Index) {
	f.elems = slices.Delete(f.elems, int(lo), int(hi))
}

func (f *forwardOnly[E]) RemoveAll() {
	f.elems = nil
}

func collectChunks[E any](c collection.Collection[E], maxLength int) [][]E {
	var out [][]E
	for sub := range collection.UnfoldSubSequences(c, maxLength) {
		out = append(out, sub.Collect())
	}

	return out
}

func oneToN(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
