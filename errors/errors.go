// Package errors holds the sentinel errors shared by the packages of this
// module, plus a small accumulator for reporting several problems at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a sort is called with a nil
	// sequence, comparator or strategy.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownAlgorithm is returned when an algorithm or pivot name is not recognized.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrSortAborted is returned when a sort stops early because its context is done.
	// The sequence is still a permutation of its input, but may not be sorted.
	ErrSortAborted = errors.New("sort aborted")

	// ErrInvalidConfig is returned when sort configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is is errors.Is, re-exported so callers importing this package under the
// name "errors" don't need the standard library alias.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf appends a formatted error wrapping sentinel.
func (c *Collection) Addf(sentinel error, format string, args ...any) {
	c.Add(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
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
