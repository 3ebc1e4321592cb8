// Package graphemes adapts a Go string to the collection interfaces, with one
// element per user-perceived character (Unicode extended grapheme cluster,
// UAX #29).
//
// Indices are byte offsets of cluster boundaries. Stepping between clusters
// is cheap, but a String is deliberately not RandomAccess: counting clusters
// between two indices walks them, as the cluster width varies.
package graphemes

import (
	"sort"
	"sync"

	"github.com/amp-labs/amp-collections/collection"
	"github.com/npillmayer/uax/grapheme"
)

var setupClasses sync.Once //nolint:gochecknoglobals

// String is a mutable sequence of grapheme clusters.
type String struct {
	text string

	// breaks holds the byte offset of every cluster start, followed by len(text).
	breaks []int
}

var (
	_ collection.Bidirectional[string]    = (*String)(nil)
	_ collection.RangeReplaceable[string] = (*String)(nil)
)

// New segments text into grapheme clusters.
func New(text string) *String {
	return &String{text: text, breaks: segment(text)}
}

func segment(text string) []int {
	if text == "" {
		return []int{0}
	}

	setupClasses.Do(grapheme.SetupGraphemeClasses)

	clusters := grapheme.StringFromString(text)
	breaks := make([]int, 0, clusters.Len()+1)

	offset := 0
	for n := range clusters.Len() {
		breaks = append(breaks, offset)
		offset += len(clusters.Nth(n))
	}

	return append(breaks, offset)
}

func (s *String) StartIndex() collection.Index {
	return 0
}

func (s *String) EndIndex() collection.Index {
	return collection.Index(len(s.text))
}

func (s *String) IndexAfter(i collection.Index) collection.Index {
	return collection.Index(s.breaks[s.boundary(i)+1])
}

func (s *String) IndexBefore(i collection.Index) collection.Index {
	return collection.Index(s.breaks[s.boundary(i)-1])
}

// At returns the cluster starting at i.
func (s *String) At(i collection.Index) string {
	return s.text[i:s.IndexAfter(i)]
}

func (s *String) RemoveSubrange(lo, hi collection.Index) {
	s.text = s.text[:lo] + s.text[hi:]
	s.breaks = segment(s.text)
}

func (s *String) RemoveAll() {
	s.text = ""
	s.breaks = segment("")
}

// Len returns the number of clusters.
func (s *String) Len() int {
	return len(s.breaks) - 1
}

func (s *String) String() string {
	return s.text
}

// boundary returns the position of i in breaks. i must be a cluster boundary.
func (s *String) boundary(i collection.Index) int {
	return sort.SearchInts(s.breaks, int(i))
}
