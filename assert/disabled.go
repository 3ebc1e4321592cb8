//go:build assertions_disabled

package assert

// Enabled reports whether checks are compiled in.
const Enabled = false

// Contract asserts that a caller honored a precondition.
func Contract(holds bool, cause error, args ...any) {
	// Intentionally left blank
}

// AtLeastOne asserts that n is a usable count or step.
func AtLeastOne(n int, cause error) {
	// Intentionally left blank
}
