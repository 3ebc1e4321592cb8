package collection

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/errors"
)

// SubSequence is a read-only view of the contiguous range [start, end) of a
// base collection. It shares storage and indices with its base: the first
// index of a SubSequence is the base index it starts at, not zero.
//
// A SubSequence is invalidated by any mutation of its base. It implements
// every navigation method, but the algorithms credit it only with the
// capabilities of its base: a view of a forward-only collection is walked,
// not offset.
type SubSequence[E any] struct {
	base  Collection[E]
	start Index
	end   Index
}

var _ RandomAccess[int] = SubSequence[int]{}

// randomAccess returns c as a RandomAccess collection when its offsets are
// constant time. For a SubSequence that is decided by the base.
func randomAccess[E any](c Collection[E]) (RandomAccess[E], bool) { //nolint:ireturn
	if sub, ok := c.(SubSequence[E]); ok {
		c = sub.base
	}

	ra, ok := c.(RandomAccess[E])

	return ra, ok
}

// bidirectional is randomAccess for stepping backward.
func bidirectional[E any](c Collection[E]) (Bidirectional[E], bool) { //nolint:ireturn
	if sub, ok := c.(SubSequence[E]); ok {
		c = sub.base
	}

	bidi, ok := c.(Bidirectional[E])

	return bidi, ok
}

// Slice returns the view of c over [lo, hi). Slicing a SubSequence yields a
// view over the same base rather than a view of a view.
func Slice[E any](c Collection[E], lo, hi Index) SubSequence[E] {
	assert.Contract(c.StartIndex() <= lo && lo <= hi && hi <= c.EndIndex(), errors.ErrIndexOutOfRange,
		"slice [%d, %d) outside [%d, %d)", lo, hi, c.StartIndex(), c.EndIndex())

	if sub, ok := c.(SubSequence[E]); ok {
		return SubSequence[E]{base: sub.base, start: lo, end: hi}
	}

	return SubSequence[E]{base: c, start: lo, end: hi}
}

// Whole returns a view of all of c.
func Whole[E any](c Collection[E]) SubSequence[E] {
	return Slice(c, c.StartIndex(), c.EndIndex())
}

func (s SubSequence[E]) StartIndex() Index {
	return s.start
}

func (s SubSequence[E]) EndIndex() Index {
	return s.end
}

func (s SubSequence[E]) IndexAfter(i Index) Index {
	return s.base.IndexAfter(i)
}

func (s SubSequence[E]) At(i Index) E { //nolint:ireturn
	return s.base.At(i)
}

// IndexBefore steps backward, delegating to the base when it is
// Bidirectional and walking forward from the start otherwise.
func (s SubSequence[E]) IndexBefore(i Index) Index {
	if bidi, ok := s.base.(Bidirectional[E]); ok {
		return bidi.IndexBefore(i)
	}

	prev := s.start
	for j := s.start; j < i; j = s.base.IndexAfter(j) {
		prev = j
	}

	return prev
}

// IndexOffsetBy is constant time only when the base is RandomAccess.
func (s SubSequence[E]) IndexOffsetBy(i Index, n int) Index {
	if ra, ok := s.base.(RandomAccess[E]); ok {
		return ra.IndexOffsetBy(i, n)
	}

	for ; n > 0; n-- {
		i = s.base.IndexAfter(i)
	}

	for ; n < 0; n++ {
		i = s.IndexBefore(i)
	}

	return i
}

// Distance is constant time only when the base is RandomAccess.
func (s SubSequence[E]) Distance(from, to Index) int {
	return Distance(s.base, from, to)
}

// Base returns the collection the view was cut from.
func (s SubSequence[E]) Base() Collection[E] { //nolint:ireturn
	return s.base
}

// Len returns the number of elements in the view.
func (s SubSequence[E]) Len() int {
	return s.Distance(s.start, s.end)
}

// IsEmpty reports whether the view has no elements.
func (s SubSequence[E]) IsEmpty() bool {
	return s.start == s.end
}

// All returns the elements of the view in order.
func (s SubSequence[E]) All() iter.Seq[E] {
	return Elements[E](s)
}

// Collect copies the elements of the view into a new slice.
func (s SubSequence[E]) Collect() []E {
	return Collect[E](s)
}

func (s SubSequence[E]) String() string {
	return fmt.Sprint(s.Collect())
}
