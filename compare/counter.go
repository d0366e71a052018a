package compare

import "go.uber.org/atomic"

// Counter tallies comparator invocations. It is safe to share one Counter
// between goroutines.
type Counter struct {
	calls atomic.Int64
}

// Count returns how many comparisons have been made so far.
func (c *Counter) Count() int64 {
	return c.calls.Load()
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.calls.Store(0)
}

// Counting wraps c so that each invocation increments counter.
func Counting[T any](c Comparator[T], counter *Counter) Comparator[T] {
	return func(a, b T) Ordering {
		counter.calls.Inc()

		return c(a, b)
	}
}
