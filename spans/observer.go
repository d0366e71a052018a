package spans

import (
	"context"
	"fmt"

	"github.com/amp-labs/amp-sort/sorting"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys set on every span.
const (
	AttrAlgorithm   attribute.Key = "sort.algorithm"
	AttrName        attribute.Key = "sort.name"
	AttrLen         attribute.Key = "sort.len"
	AttrComparisons attribute.Key = "sort.comparisons"
	AttrSwaps       attribute.Key = "sort.swaps"
	AttrWrites      attribute.Key = "sort.writes"
	AttrPasses      attribute.Key = "sort.passes"
)

// Observer is a sorting.Observer that records one span per report.
// It is safe for concurrent use.
type Observer struct {
	tracer   trace.Tracer
	spanName string
	spanKind trace.SpanKind
	failure  string
	attrs    []attribute.KeyValue
}

var _ sorting.Observer = (*Observer)(nil)

// NewObserver returns an Observer. The tracer stored with WithTracer in the
// report context wins over tracer; tracer may be nil, in which case reports
// seen without a context tracer are only counted.
func NewObserver(tracer trace.Tracer, opts ...Option) *Observer {
	o := &Observer{
		tracer:   tracer,
		spanKind: trace.SpanKindInternal,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// Observe implements sorting.Observer.
func (o *Observer) Observe(ctx context.Context, r sorting.Report) {
	tracer, found := TracerFromContext(ctx)
	if !found || tracer == nil {
		tracer = o.tracer
	}

	if tracer == nil {
		reportWithoutTracerCounter.WithLabelValues(r.Name).Inc()

		return
	}

	name := o.spanName
	if name == "" {
		name = "sort " + r.Name
	}

	attrs := make([]attribute.KeyValue, 0, len(o.attrs)+7) //nolint:mnd
	attrs = append(attrs, o.attrs...)
	attrs = append(attrs,
		AttrAlgorithm.String(string(r.Algorithm)),
		AttrName.String(r.Name),
		AttrLen.Int(r.Len),
		AttrComparisons.Int(r.Stats.Comparisons),
		AttrSwaps.Int(r.Stats.Swaps),
		AttrWrites.Int(r.Stats.Writes),
		AttrPasses.Int(r.Stats.Passes),
	)

	_, span := tracer.Start(ctx, name,
		trace.WithTimestamp(r.Started),
		trace.WithSpanKind(o.spanKind),
		trace.WithAttributes(attrs...),
	)

	defer span.End(trace.WithTimestamp(r.Started.Add(r.Duration)))

	if r.Err != nil {
		span.RecordError(r.Err)

		if o.failure != "" {
			span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", o.failure, r.Err.Error()))
		} else {
			span.SetStatus(codes.Error, r.Err.Error())
		}

		return
	}

	// The SDK drops descriptions on Ok statuses, so none is set.
	span.SetStatus(codes.Ok, "")
}
