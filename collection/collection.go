// Package collection implements algorithms over ordered containers.
//
// A container exposes a first index, an end index one past its last element,
// a way to step an index forward, and element access. Optional capabilities
// (stepping backward, constant-time offsets, removal of a range) are
// discovered by interface assertion, and every algorithm falls back to plain
// forward traversal when a capability is missing.
//
// Indices are container-relative. An index is valid only for the container
// that produced it, and only until that container is mutated. The same holds
// for every SubSequence and lazy sequence derived from a container: mutating
// the container while one of them is still in use is undefined. None of the
// types here are safe for concurrent use.
package collection

// Index locates an element inside the container that produced it. Its unit
// is chosen by the container (an element offset, a byte offset, ...), but
// indices of a single container always order the same way as the elements
// they locate. Comparing indices of different containers is meaningless.
type Index int

// Collection is an ordered, forward-traversable container.
type Collection[E any] interface {
	// StartIndex is the index of the first element, or EndIndex if empty.
	StartIndex() Index

	// EndIndex is the index one past the last element.
	EndIndex() Index

	// IndexAfter returns the index immediately after i. i must be a valid
	// index below EndIndex.
	IndexAfter(i Index) Index

	// At returns the element at i. i must be a valid index below EndIndex.
	At(i Index) E
}

// Bidirectional is a Collection that can also step backward.
type Bidirectional[E any] interface {
	Collection[E]

	// IndexBefore returns the index immediately before i. i must be a valid
	// index above StartIndex.
	IndexBefore(i Index) Index
}

// RandomAccess is a Bidirectional collection whose offsets and distances are
// computed in constant time.
type RandomAccess[E any] interface {
	Bidirectional[E]

	// IndexOffsetBy returns the index n steps from i. The result is not
	// bounds checked.
	IndexOffsetBy(i Index, n int) Index

	// Distance returns the number of steps from one index to another.
	Distance(from, to Index) int
}

// RangeReplaceable is a Collection that supports removing a contiguous range.
type RangeReplaceable[E any] interface {
	Collection[E]

	// RemoveSubrange removes the elements in [lo, hi).
	RemoveSubrange(lo, hi Index)

	// RemoveAll removes every element.
	RemoveAll()
}
