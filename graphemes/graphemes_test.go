package graphemes_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/amp-collections/collection"
	"github.com/amp-labs/amp-collections/graphemes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flags = "🇺🇸🇺🇸🇧🇷🇺🇸🇺🇸"

func TestDistanceTo(t *testing.T) {
	t.Parallel()

	s := graphemes.New(flags)
	require.Equal(t, 5, s.Len())

	usa, ok := collection.FirstIndexOf[string](s, "🇺🇸")
	require.True(t, ok)
	assert.Equal(t, 0, collection.DistanceTo[string](s, usa))

	bra, ok := collection.FirstIndexOf[string](s, "🇧🇷")
	require.True(t, ok)
	assert.Equal(t, 2, collection.DistanceTo[string](s, bra))

	// Byte offsets and cluster counts differ.
	assert.Equal(t, collection.Index(16), bra)
}

func TestElements(t *testing.T) {
	t.Parallel()

	s := graphemes.New("e\u0301a🇧🇷!")

	assert.Equal(t, []string{"e\u0301", "a", "🇧🇷", "!"}, slices.Collect(collection.Elements[string](s)))
	assert.Equal(t, 4, collection.Count[string](s))
}

func TestUnfoldSubSequences(t *testing.T) {
	t.Parallel()

	s := graphemes.New(flags)

	var chunks []string
	for chunk := range collection.UnfoldSubSequences[string](s, 2) {
		chunks = append(chunks, strings.Join(chunk.Collect(), ""))
	}

	assert.Equal(t, []string{"🇺🇸🇺🇸", "🇧🇷🇺🇸", "🇺🇸"}, chunks)
}

func TestEvery(t *testing.T) {
	t.Parallel()

	got := slices.Collect(collection.Every[string](graphemes.New("abcdefg"), 3))
	assert.Equal(t, []string{"a", "d", "g"}, got)
}

func TestBounded(t *testing.T) {
	t.Parallel()

	s := graphemes.New("key=«valué»;")

	value, ok := collection.SubSequenceAfterUpTo[string](s, "«", "»")
	require.True(t, ok)
	assert.Equal(t, "valué", strings.Join(value.Collect(), ""))
}

func TestTrim(t *testing.T) {
	t.Parallel()

	isSpace := func(c string) bool { return c == " " }

	s := graphemes.New("  héllo  ")

	kept := collection.DropLastWhile[string](s, isSpace)
	assert.Equal(t, "  héllo", strings.Join(kept.Collect(), ""))

	collection.RemoveWhile[string](s, isSpace)
	assert.Equal(t, "héllo  ", s.String())

	collection.RemoveLastWhile[string](s, isSpace)
	assert.Equal(t, "héllo", s.String())
	assert.Equal(t, 5, s.Len())

	collection.RemoveWhile[string](s, func(string) bool { return true })
	assert.Empty(t, s.String())
	assert.True(t, collection.IsEmpty[string](s))
}

func TestIndexBefore(t *testing.T) {
	t.Parallel()

	s := graphemes.New("a🇧🇷b")

	end := s.EndIndex()
	last := s.IndexBefore(end)
	assert.Equal(t, "b", s.At(last))

	flag := s.IndexBefore(last)
	assert.Equal(t, "🇧🇷", s.At(flag))
	assert.Equal(t, s.StartIndex(), s.IndexBefore(flag))
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	s := graphemes.New("")

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, slices.Collect(collection.Elements[string](s)))
	assert.Empty(t, slices.Collect(collection.Every[string](s, 2)))
	assert.Equal(t, 0, collection.Count[string](s))
}

func TestRemoveSubrangeToEmpty(t *testing.T) {
	t.Parallel()

	s := graphemes.New("🇺🇸a")
	s.RemoveSubrange(s.StartIndex(), s.EndIndex())

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.String())
	assert.Equal(t, s.StartIndex(), s.EndIndex())

	s = graphemes.New("xx")
	collection.RemoveWhile[string](s, func(c string) bool { return c == "x" })
	assert.Equal(t, 0, s.Len())
}
