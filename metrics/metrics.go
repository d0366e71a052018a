// Package metrics exports sort reports as Prometheus metrics.
package metrics

import (
	"context"
	"errors"

	sorterrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "amp"
	subsystem = "sort"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeAborted = "aborted"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Observer is a sorting.Observer that records every report it receives.
// It is safe for concurrent use.
//
// Metrics (all labelled by algorithm and name):
//   - amp_sort_sorts_total{outcome}
//   - amp_sort_comparisons_total
//   - amp_sort_swaps_total
//   - amp_sort_writes_total
//   - amp_sort_duration_seconds
//   - amp_sort_length
type Observer struct {
	sorts       *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	swaps       *prometheus.CounterVec
	writes      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	length      *prometheus.HistogramVec
}

var _ sorting.Observer = (*Observer)(nil)

// NewObserver creates the metrics and registers them with reg. A nil reg
// leaves them unregistered, which is mostly useful in tests.
//
// Registration uses promauto, so it panics if the metrics are already
// registered with reg: build one Observer per registry and share it, since
// Observe is safe for concurrent use.
func NewObserver(reg prometheus.Registerer) *Observer {
	factory := promauto.With(reg)
	labels := []string{"algorithm", "name"}

	return &Observer{
		sorts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sorts_total",
			Help:      "Total number of sort calls by outcome",
		}, []string{"algorithm", "name", "outcome"}),
		comparisons: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "comparisons_total",
			Help:      "Total number of comparator invocations",
		}, labels),
		swaps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "swaps_total",
			Help:      "Total number of element swaps",
		}, labels),
		writes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "writes_total",
			Help:      "Total number of single element writes",
		}, labels),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time of sort calls",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12), //nolint:mnd
		}, labels),
		length: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "length",
			Help:      "Number of elements per sort call",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), //nolint:mnd
		}, labels),
	}
}

// Observe implements sorting.Observer.
func (o *Observer) Observe(_ context.Context, r sorting.Report) {
	alg := string(r.Algorithm)

	o.sorts.WithLabelValues(alg, r.Name, Outcome(r.Err)).Inc()
	o.comparisons.WithLabelValues(alg, r.Name).Add(float64(r.Stats.Comparisons))
	o.swaps.WithLabelValues(alg, r.Name).Add(float64(r.Stats.Swaps))
	o.writes.WithLabelValues(alg, r.Name).Add(float64(r.Stats.Writes))
	o.duration.WithLabelValues(alg, r.Name).Observe(r.Duration.Seconds())
	o.length.WithLabelValues(alg, r.Name).Observe(float64(r.Len))
}

// Outcome maps a sort error to the value of the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, sorterrors.ErrSortAborted):
		return OutcomeAborted
	case errors.Is(err, sorterrors.ErrInvalidArgument):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
