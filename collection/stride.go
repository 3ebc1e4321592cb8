package collection

import (
	"iter"

	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/errors"
)

// Every yields the elements of c at offsets 0, n, 2n, ... up to the end.
//
// Elements are produced lazily, one per pull. n must be at least 1; anything
// smaller panics with a contract violation wrapping errors.ErrInvalidStride.
func Every[E any](c Collection[E], n int) iter.Seq[E] {
	assert.AtLeastOne(n, errors.ErrInvalidStride)

	return func(yield func(E) bool) {
		if n < 1 {
			return
		}

		end := c.EndIndex()

		for i := c.StartIndex(); i < end; {
			if !yield(c.At(i)) {
				return
			}

			i, _ = IndexOffsetBy(c, i, n, end)
		}
	}
}
