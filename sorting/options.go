package sorting

import (
	"context"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-sort/errors"
)

// Pivot selects how quick sort chooses the pivot of each range.
type Pivot string

const (
	// PivotLast always uses the last element of the range.
	PivotLast Pivot = "last"
	// PivotMedianOfThree moves the median of the first, middle and last
	// elements into the last slot before partitioning.
	PivotMedianOfThree Pivot = "median-of-three"
)

// ParsePivot converts a pivot name (case-insensitive) into a Pivot.
func ParsePivot(name string) (Pivot, error) {
	switch p := Pivot(strings.ToLower(strings.TrimSpace(name))); p {
	case PivotLast, PivotMedianOfThree:
		return p, nil
	default:
		return "", fmt.Errorf("%w: pivot %q", errors.ErrUnknownAlgorithm, name)
	}
}

type options struct {
	ctx       context.Context //nolint:containedctx
	stats     *Stats
	pivot     Pivot
	observers []Observer
	name      string
}

// Option configures a single sort call.
type Option func(*options)

// WithStats adds the counters of the call to stats.
func WithStats(stats *Stats) Option {
	return func(o *options) {
		o.stats = stats
	}
}

// WithContext makes the sort stop early with errors.ErrSortAborted once ctx
// is done. Observers also receive this context.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithPivot selects the quick sort pivot. Other strategies ignore it.
func WithPivot(p Pivot) Option {
	return func(o *options) {
		o.pivot = p
	}
}

// WithObserver registers observers that are told about the call once it finishes.
func WithObserver(observers ...Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, observers...)
	}
}

// WithName sets the label reported to observers. It defaults to the
// algorithm name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		ctx:   context.Background(),
		pivot: PivotLast,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.ctx == nil {
		o.ctx = context.Background()
	}

	return o
}
