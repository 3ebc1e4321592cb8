package collection

import "slices"

// Array adapts a Go slice to the collection interfaces. Indices are element
// offsets, so every operation on an Array is constant time except removal.
type Array[E any] struct {
	elems []E
}

var (
	_ RandomAccess[int]     = (*Array[int])(nil)
	_ RangeReplaceable[int] = (*Array[int])(nil)
)

// NewArray returns an Array holding elems.
func NewArray[E any](elems ...E) *Array[E] {
	return &Array[E]{elems: elems}
}

// FromSlice wraps s without copying it. Removals performed through the
// Array shift elements inside the backing array of s.
func FromSlice[E any](s []E) *Array[E] {
	return &Array[E]{elems: s}
}

func (a *Array[E]) StartIndex() Index {
	return 0
}

func (a *Array[E]) EndIndex() Index {
	return Index(len(a.elems))
}

func (a *Array[E]) IndexAfter(i Index) Index {
	return i + 1
}

func (a *Array[E]) IndexBefore(i Index) Index {
	return i - 1
}

func (a *Array[E]) IndexOffsetBy(i Index, n int) Index {
	return i + Index(n)
}

func (a *Array[E]) Distance(from, to Index) int {
	return int(to - from)
}

func (a *Array[E]) At(i Index) E { //nolint:ireturn
	return a.elems[i]
}

func (a *Array[E]) RemoveSubrange(lo, hi Index) {
	a.elems = slices.Delete(a.elems, int(lo), int(hi))
}

func (a *Array[E]) RemoveAll() {
	clear(a.elems)
	a.elems = a.elems[:0]
}

// Len returns the number of elements.
func (a *Array[E]) Len() int {
	return len(a.elems)
}

// Slice returns the current contents. The result aliases the Array.
func (a *Array[E]) Slice() []E {
	return a.elems
}
