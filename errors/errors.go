// Package errors holds the sentinel errors shared by the collection algorithms
// and a small accumulator for reporting several failures at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is the cause of a contract violation when a chunk
	// length smaller than one is requested.
	ErrInvalidLength = errors.New("chunk length must be at least 1")

	// ErrInvalidStride is the cause of a contract violation when a stride
	// smaller than one is requested.
	ErrInvalidStride = errors.New("stride must be at least 1")

	// ErrIndexOutOfRange is the cause of a contract violation when an index
	// lies outside the collection it is used with.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPredicate wraps every error returned by a caller-supplied predicate.
	ErrPredicate = errors.New("predicate failed")
)

// ContractViolation is the panic value used when a caller breaks an
// operation's precondition. It is a programming error, not a runtime
// failure, so it is raised with panic rather than returned.
type ContractViolation struct {
	Err    error
	Detail string
}

func (v *ContractViolation) Error() string {
	if v.Detail == "" {
		return "contract violation: " + v.Err.Error()
	}

	return fmt.Sprintf("contract violation: %v: %s", v.Err, v.Detail)
}

func (v *ContractViolation) Unwrap() error {
	return v.Err
}

// Predicate wraps an error returned by a predicate so that both ErrPredicate
// and the original error match with errors.Is.
func Predicate(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrPredicate, err)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent inputs are validated and every failure
// should be reported together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil if the collection is empty, the single error if there's
// only one, or an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
