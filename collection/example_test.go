package collection_test

import (
	"fmt"

	"github.com/amp-labs/amp-collections/collection"
)

func ExampleUnfoldSubSequences() {
	for chunk := range collection.UnfoldSubSequences(collection.NewArray(1, 2, 3, 4, 5), 2) {
		fmt.Println(chunk)
	}

	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleEvery() {
	for v := range collection.Every(collection.NewArray(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), 3) {
		fmt.Print(v, " ")
	}

	fmt.Println()

	// Output:
	// 1 4 7 10
}

func ExampleSubSequenceAfterUpTo() {
	tokens := collection.NewArray("GET", "/", "HTTP/1.1", "Host:", "example.com", ";")

	host, ok := collection.SubSequenceAfterUpTo(tokens, "Host:", ";")
	fmt.Println(host, ok)

	_, ok = collection.SubSequenceAfterUpTo(tokens, ";", "GET")
	fmt.Println(ok)

	// Output:
	// [example.com] true
	// false
}

func ExampleRemoveLastWhile() {
	readings := collection.NewArray(3, 5, 0, 0)

	collection.RemoveLastWhile(readings, func(v int) bool { return v == 0 })
	fmt.Println(readings.Slice())

	// Output:
	// [3 5]
}
