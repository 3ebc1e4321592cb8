// Command seqtool runs the collection algorithms over tokens given on the
// command line or read from stdin.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "seqtool: %v\n", err)
		os.Exit(1)
	}
}
