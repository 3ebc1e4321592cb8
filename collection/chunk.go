package collection

import (
	"iter"

	"github.com/amp-labs/amp-collections/assert"
	"github.com/amp-labs/amp-collections/errors"
)

// UnfoldSubSequences splits c into consecutive views of maxLength elements.
// Only the last view may be shorter, and an empty collection yields nothing.
// Concatenating the views reproduces c.
//
// Views are produced lazily, one per pull. Ranging over the result again
// starts over from the first element.
//
// maxLength must be at least 1; anything smaller panics with a contract
// violation wrapping errors.ErrInvalidLength.
func UnfoldSubSequences[E any](c Collection[E], maxLength int) iter.Seq[SubSequence[E]] {
	assert.AtLeastOne(maxLength, errors.ErrInvalidLength)

	return func(yield func(SubSequence[E]) bool) {
		if maxLength < 1 {
			return
		}

		end := c.EndIndex()

		for lower := c.StartIndex(); lower < end; {
			upper, _ := IndexOffsetBy(c, lower, maxLength, end)

			if !yield(Slice(c, lower, upper)) {
				return
			}

			lower = upper
		}
	}
}
