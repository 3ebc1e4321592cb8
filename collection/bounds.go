package collection

// boundKind says whether a bound is open (the collection's own start or end)
// or tied to a marker, and whether the marker itself is inside the range.
type boundKind int

const (
	boundOpen boundKind = iota
	boundInclusive
	boundExclusive
)

// Lower is where an extracted range begins.
type Lower[E comparable] struct {
	kind   boundKind
	marker E
}

// Start is the lower bound at the first element of the collection.
func Start[E comparable]() Lower[E] {
	return Lower[E]{kind: boundOpen}
}

// From is the lower bound at the first occurrence of marker, inclusive.
func From[E comparable](marker E) Lower[E] {
	return Lower[E]{kind: boundInclusive, marker: marker}
}

// After is the lower bound immediately after the first occurrence of marker.
func After[E comparable](marker E) Lower[E] {
	return Lower[E]{kind: boundExclusive, marker: marker}
}

// Upper is where an extracted range ends.
type Upper[E comparable] struct {
	kind   boundKind
	marker E
}

// End is the upper bound at the end of the collection.
func End[E comparable]() Upper[E] {
	return Upper[E]{kind: boundOpen}
}

// UpTo ends the range just before the first occurrence of marker at or after
// the lower bound.
func UpTo[E comparable](marker E) Upper[E] {
	return Upper[E]{kind: boundExclusive, marker: marker}
}

// Through ends the range just after the first occurrence of marker at or
// after the lower bound.
func Through[E comparable](marker E) Upper[E] {
	return Upper[E]{kind: boundInclusive, marker: marker}
}

// Bounded returns the view of c delimited by lower and upper, and false if a
// marker cannot be found.
//
// The lower marker is searched from the start of c. The upper marker is only
// searched from the resolved lower bound onward, so an occurrence before the
// lower marker never matches. With From and UpTo on the same marker the
// result is the empty view at that marker.
func Bounded[E comparable](c Collection[E], lower Lower[E], upper Upper[E]) (SubSequence[E], bool) {
	lo, end := c.StartIndex(), c.EndIndex()

	if lower.kind != boundOpen {
		found, ok := indexOf(c, lo, end, lower.marker)
		if !ok {
			return SubSequence[E]{}, false
		}

		lo = found
		if lower.kind == boundExclusive {
			lo = c.IndexAfter(found)
		}
	}

	hi := end

	if upper.kind != boundOpen {
		found, ok := indexOf(c, lo, end, upper.marker)
		if !ok {
			return SubSequence[E]{}, false
		}

		hi = found
		if upper.kind == boundInclusive {
			hi = c.IndexAfter(found)
		}
	}

	return Slice(c, lo, hi), true
}

// SubSequenceFrom returns c from the first a to the end.
func SubSequenceFrom[E comparable](c Collection[E], a E) (SubSequence[E], bool) {
	return Bounded(c, From(a), End[E]())
}

// SubSequenceAfter returns c from just after the first a to the end.
func SubSequenceAfter[E comparable](c Collection[E], a E) (SubSequence[E], bool) {
	return Bounded(c, After(a), End[E]())
}

// SubSequenceUpTo returns c from the start up to, not including, the first b.
func SubSequenceUpTo[E comparable](c Collection[E], b E) (SubSequence[E], bool) {
	return Bounded(c, Start[E](), UpTo(b))
}

// SubSequenceUpThrough returns c from the start through the first b.
func SubSequenceUpThrough[E comparable](c Collection[E], b E) (SubSequence[E], bool) {
	return Bounded(c, Start[E](), Through(b))
}

// SubSequenceFromUpTo returns c from the first a up to, not including, the
// next b.
func SubSequenceFromUpTo[E comparable](c Collection[E], a, b E) (SubSequence[E], bool) {
	return Bounded(c, From(a), UpTo(b))
}

// SubSequenceFromUpThrough returns c from the first a through the next b.
func SubSequenceFromUpThrough[E comparable](c Collection[E], a, b E) (SubSequence[E], bool) {
	return Bounded(c, From(a), Through(b))
}

// SubSequenceAfterUpTo returns the elements strictly between the first a and
// the next b.
func SubSequenceAfterUpTo[E comparable](c Collection[E], a, b E) (SubSequence[E], bool) {
	return Bounded(c, After(a), UpTo(b))
}

// SubSequenceAfterUpThrough returns c from just after the first a through the
// next b.
func SubSequenceAfterUpThrough[E comparable](c Collection[E], a, b E) (SubSequence[E], bool) {
	return Bounded(c, After(a), Through(b))
}

// FirstIndexOf returns the index of the first element of c equal to marker.
func FirstIndexOf[E comparable](c Collection[E], marker E) (Index, bool) {
	return indexOf(c, c.StartIndex(), c.EndIndex(), marker)
}

func indexOf[E comparable](c Collection[E], from, to Index, marker E) (Index, bool) {
	for i := from; i < to; i = c.IndexAfter(i) {
		if c.At(i) == marker {
			return i, true
		}
	}

	return to, false
}
