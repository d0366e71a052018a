// Package spans turns sort reports into OpenTelemetry spans.
//
// The sort itself is not wrapped: once a call finishes, Observer creates a
// span backdated to the call's start time and ends it at start+duration, so
// tracing adds no work to the comparison loop.
//
//	ctx = spans.WithTracer(ctx, otel.Tracer("sorter"))
//	sorting.SortOrdered(values, sorting.Quick[int],
//	    sorting.WithContext(ctx),
//	    sorting.WithObserver(spans.NewObserver(nil)),
//	)
package spans
