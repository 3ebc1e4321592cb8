// Package assert provides precondition checks for the collection algorithms.
//
// A failed check is a programming error and panics. Building with the
// assertions_disabled tag compiles every check down to a no-op; callers that
// do so take responsibility for honoring the preconditions themselves.
package assert

import (
	"fmt"
)

// message renders the optional args the same way for every check:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the message.
func message(args []any) string {
	if len(args) == 0 {
		return ""
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		return fmt.Sprintf(firstStr, remaining...)
	}

	return fmt.Sprintf("%v", args)
}
