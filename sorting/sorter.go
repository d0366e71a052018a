package sorting

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/contexts"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sequence"
)

// sorter holds the state of one top-level call. All element access from the
// algorithms goes through it so that Stats stay accurate.
type sorter[T any] struct {
	ctx   context.Context //nolint:containedctx
	alg   Algorithm
	seq   sequence.Sequence[T]
	cmp   compare.Comparator[T]
	pivot Pivot
	stats Stats
}

func (s *sorter[T]) compare(a, b T) compare.Ordering {
	s.stats.Comparisons++

	return s.cmp(a, b)
}

func (s *sorter[T]) compareAt(i, j int) compare.Ordering {
	return s.compare(s.seq.At(i), s.seq.At(j))
}

func (s *sorter[T]) swap(i, j int) {
	s.stats.Swaps++

	sequence.Swap(s.seq, i, j)
}

func (s *sorter[T]) set(i int, v T) {
	s.stats.Writes++

	s.seq.Set(i, v)
}

// pass starts a new outer iteration, failing if the context is done.
func (s *sorter[T]) pass() error {
	if err := s.checkAlive(); err != nil {
		return err
	}

	s.stats.Passes++

	return nil
}

func (s *sorter[T]) checkAlive() error {
	if contexts.IsContextAlive(s.ctx) {
		return nil
	}

	cause := logger.AnnotateError(context.Cause(s.ctx),
		"algorithm", string(s.alg), "passes", s.stats.Passes)

	return fmt.Errorf("%w after %d passes: %w", errors.ErrSortAborted, s.stats.Passes, cause)
}

// execute validates the arguments, runs body and reports the call.
func execute[T any](
	alg Algorithm,
	seq sequence.Sequence[T],
	cmp compare.Comparator[T],
	opts []Option,
	body func(s *sorter[T]) error,
) (sequence.Sequence[T], error) {
	o := newOptions(opts)

	s := &sorter[T]{
		ctx:   o.ctx,
		alg:   alg,
		seq:   seq,
		cmp:   cmp,
		pivot: o.pivot,
	}

	started := time.Now()

	var (
		err    error
		length int
	)

	switch {
	case sequence.IsNil(seq):
		err = fmt.Errorf("%w: nil sequence", errors.ErrInvalidArgument)
	case cmp == nil:
		err = fmt.Errorf("%w: nil comparator", errors.ErrInvalidArgument)
	default:
		length = seq.Len()

		err = s.checkAlive()
		if err == nil {
			err = body(s)
		}
	}

	if o.stats != nil {
		o.stats.Add(s.stats)
	}

	if len(o.observers) > 0 {
		name := o.name
		if name == "" {
			name = string(alg)
		}

		report := Report{
			Algorithm: alg,
			Name:      name,
			Len:       length,
			Stats:     s.stats,
			Started:   started,
			Duration:  time.Since(started),
			Err:       err,
		}

		for _, obs := range o.observers {
			obs.Observe(o.ctx, report)
		}
	}

	return seq, err
}
