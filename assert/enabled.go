//go:build !assertions_disabled

package assert

import (
	"github.com/amp-labs/amp-collections/errors"
)

// Enabled reports whether checks are compiled in.
const Enabled = true

// Contract asserts that a caller honored a precondition. If it did not, it
// panics with an *errors.ContractViolation wrapping cause, so a recovering
// caller can match the cause with errors.Is.
func Contract(holds bool, cause error, args ...any) {
	if holds {
		return
	}

	panic(&errors.ContractViolation{Err: cause, Detail: message(args)})
}

// AtLeastOne asserts that n is a usable count or step.
func AtLeastOne(n int, cause error) {
	Contract(n >= 1, cause, "got %d", n)
}
