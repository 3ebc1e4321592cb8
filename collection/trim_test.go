package collection_test

import (
	stderrors "errors"
	"testing"

	"github.com/amp-labs/amp-collections/collection"
	"github.com/amp-labs/amp-collections/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOdd = stderrors.New("odd element") //nolint:gochecknoglobals

func isZero(v int) bool {
	return v == 0
}

// failOn returns a predicate matching zeros that fails on the given value.
func failOn(bad int) func(int) (bool, error) {
	return func(v int) (bool, error) {
		if v == bad {
			return false, errOdd
		}

		return v == 0, nil
	}
}

func TestDropLastWhile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "trailing zeros", input: []int{0, 1, 2, 0, 0}, expected: []int{0, 1, 2}},
		{name: "no trailing match", input: []int{1, 2, 3}, expected: []int{1, 2, 3}},
		{name: "all match", input: []int{0, 0, 0}, expected: []int{}},
		{name: "empty", input: nil, expected: []int{}},
		{name: "single kept", input: []int{4}, expected: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, c := range []collection.Collection[int]{
				collection.FromSlice(tt.input),
				newForwardOnly(tt.input...),
			} {
				sub := collection.DropLastWhile(c, isZero)
				assert.Equal(t, tt.expected, sub.Collect())
				assert.Equal(t, c.StartIndex(), sub.StartIndex())
			}
		})
	}
}

func TestDropLastWhileErr(t *testing.T) {
	t.Parallel()

	t.Run("failure aborts", func(t *testing.T) {
		t.Parallel()

		_, err := collection.DropLastWhileErr(collection.NewArray(1, 3, 0, 0), failOn(3))
		require.ErrorIs(t, err, errOdd)
		require.ErrorIs(t, err, errors.ErrPredicate)
	})

	t.Run("failure past the cut is never reached", func(t *testing.T) {
		t.Parallel()

		sub, err := collection.DropLastWhileErr(collection.NewArray(3, 1, 0), failOn(3))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1}, sub.Collect())
	})
}

func TestDropFirstWhile(t *testing.T) {
	t.Parallel()

	sub := collection.DropFirstWhile(collection.NewArray(0, 0, 1, 0), isZero)
	assert.Equal(t, []int{1, 0}, sub.Collect())
	assert.Equal(t, collection.Index(2), sub.StartIndex())

	sub = collection.DropFirstWhile(collection.NewArray(0, 0), isZero)
	assert.True(t, sub.IsEmpty())
	assert.Equal(t, collection.Index(2), sub.StartIndex())

	_, err := collection.DropFirstWhileErr(collection.NewArray(0, 3), failOn(3))
	require.ErrorIs(t, err, errOdd)
}

func TestRemoveWhile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "leading zeros", input: []int{0, 0, 1, 0, 2}, expected: []int{1, 0, 2}},
		{name: "nothing to remove", input: []int{1, 0}, expected: []int{1, 0}},
		{name: "all removed", input: []int{0, 0}, expected: []int{}},
		{name: "empty", input: []int{}, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			arr := collection.FromSlice(append([]int{}, tt.input...))
			collection.RemoveWhile(arr, isZero)
			assert.Equal(t, tt.expected, arr.Slice())

			fwd := newForwardOnly(append([]int{}, tt.input...)...)
			collection.RemoveWhile(fwd, isZero)
			assert.ElementsMatch(t, tt.expected, fwd.elems)
		})
	}
}

func TestRemoveLastWhile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "trailing zeros", input: []int{0, 1, 0, 2, 0, 0}, expected: []int{0, 1, 0, 2}},
		{name: "nothing to remove", input: []int{0, 1}, expected: []int{0, 1}},
		{name: "all removed", input: []int{0, 0, 0}, expected: []int{}},
		{name: "empty", input: []int{}, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			arr := collection.FromSlice(append([]int{}, tt.input...))
			collection.RemoveLastWhile(arr, isZero)
			assert.Equal(t, tt.expected, arr.Slice())

			fwd := newForwardOnly(append([]int{}, tt.input...)...)
			collection.RemoveLastWhile(fwd, isZero)
			assert.ElementsMatch(t, tt.expected, fwd.elems)
		})
	}
}

func TestRemoveWhileErr_Atomic(t *testing.T) {
	t.Parallel()

	t.Run("front", func(t *testing.T) {
		t.Parallel()

		arr := collection.NewArray(0, 0, 3, 0, 1)
		err := collection.RemoveWhileErr(arr, failOn(3))

		require.ErrorIs(t, err, errOdd)
		assert.Equal(t, []int{0, 0, 3, 0, 1}, arr.Slice())
	})

	t.Run("back", func(t *testing.T) {
		t.Parallel()

		arr := collection.NewArray(1, 0, 3, 0, 0)
		err := collection.RemoveLastWhileErr(arr, failOn(3))

		require.ErrorIs(t, err, errOdd)
		assert.Equal(t, []int{1, 0, 3, 0, 0}, arr.Slice())
	})

	t.Run("success removes exactly the prefix", func(t *testing.T) {
		t.Parallel()

		arr := collection.NewArray(0, 0, 1, 3)
		err := collection.RemoveWhileErr(arr, failOn(3))

		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, arr.Slice())
	})
}

func TestIndexWhere(t *testing.T) {
	t.Parallel()

	arr := collection.NewArray(5, 0, 7, 0, 9)

	i, ok := collection.FirstIndexWhere(arr, isZero)
	require.True(t, ok)
	assert.Equal(t, collection.Index(1), i)

	i, ok = collection.LastIndexWhere(arr, isZero)
	require.True(t, ok)
	assert.Equal(t, collection.Index(3), i)

	i, ok = collection.LastIndexWhere(newForwardOnly(5, 0, 7, 0, 9), isZero)
	require.True(t, ok)
	assert.Equal(t, collection.Index(3), i)

	_, ok = collection.FirstIndexWhere(arr, func(v int) bool { return v > 100 })
	assert.False(t, ok)
}
