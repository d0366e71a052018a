package spans_test

import (
	"context"
	"testing"
	"time"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/amp-labs/amp-sort/spans"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func setupTestTracer() (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	return tp, exporter
}

func attrMap(stub tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(stub.Attributes))
	for _, kv := range stub.Attributes {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestTracerFromContext(t *testing.T) {
	t.Parallel()

	t.Run("tracer exists", func(t *testing.T) {
		t.Parallel()

		tp, _ := setupTestTracer()
		tracer := tp.Tracer("test-tracer")

		ctx := spans.WithTracer(t.Context(), tracer)

		retrieved, found := spans.TracerFromContext(ctx)
		assert.True(t, found)
		assert.Equal(t, tracer, retrieved)
	})

	t.Run("tracer does not exist", func(t *testing.T) {
		t.Parallel()

		retrieved, found := spans.TracerFromContext(t.Context())
		assert.False(t, found)
		assert.Nil(t, retrieved)
	})
}

func TestObserver_Success(t *testing.T) {
	t.Parallel()

	tp, exporter := setupTestTracer()
	ctx := spans.WithTracer(t.Context(), tp.Tracer("test-tracer"))

	var stats sorting.Stats

	before := time.Now()

	_, err := sorting.SortOrdered([]int{70, 30, 50, 20, 40, -50}, sorting.Insertion[int],
		sorting.WithContext(ctx),
		sorting.WithStats(&stats),
		sorting.WithObserver(spans.NewObserver(nil, spans.WithAttribute("suite", attribute.StringValue("spans")))),
	)
	require.NoError(t, err)

	got := exporter.GetSpans()
	require.Len(t, got, 1)

	span := got[0]
	assert.Equal(t, "sort insertion", span.Name)
	assert.Equal(t, trace.SpanKindInternal, span.SpanKind)
	assert.Equal(t, codes.Ok, span.Status.Code)
	assert.Empty(t, span.Status.Description)
	assert.WithinDuration(t, before, span.StartTime, time.Minute)
	assert.False(t, span.EndTime.Before(span.StartTime))

	attrs := attrMap(span)
	assert.Equal(t, "insertion", attrs[spans.AttrAlgorithm].AsString())
	assert.Equal(t, "insertion", attrs[spans.AttrName].AsString())
	assert.Equal(t, int64(6), attrs[spans.AttrLen].AsInt64())
	assert.Equal(t, int64(stats.Comparisons), attrs[spans.AttrComparisons].AsInt64())
	assert.Equal(t, int64(stats.Writes), attrs[spans.AttrWrites].AsInt64())
	assert.Equal(t, int64(5), attrs[spans.AttrPasses].AsInt64())
	assert.Equal(t, "spans", attrs["suite"].AsString())
}

func TestObserver_Failure(t *testing.T) {
	t.Parallel()

	tp, exporter := setupTestTracer()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	obs := spans.NewObserver(tp.Tracer("test-tracer"),
		spans.WithSpanName("nightly"),
		spans.WithSpanKind(trace.SpanKindClient),
		spans.WithErrorMessage("sort failed"),
	)

	_, err := sorting.SortOrdered([]int{2, 1}, sorting.Bubble[int],
		sorting.WithContext(ctx), sorting.WithObserver(obs))
	require.ErrorIs(t, err, errors.ErrSortAborted)

	got := exporter.GetSpans()
	require.Len(t, got, 1)

	span := got[0]
	assert.Equal(t, "nightly", span.Name)
	assert.Equal(t, trace.SpanKindClient, span.SpanKind)
	assert.Equal(t, codes.Error, span.Status.Code)
	assert.Equal(t, "sort failed: "+err.Error(), span.Status.Description)

	require.NotEmpty(t, span.Events)
	assert.Equal(t, "exception", span.Events[0].Name)
}

func TestObserver_ContextTracerWins(t *testing.T) {
	t.Parallel()

	fallbackTP, fallback := setupTestTracer()
	contextTP, fromContext := setupTestTracer()

	obs := spans.NewObserver(fallbackTP.Tracer("fallback"))
	ctx := spans.WithTracer(t.Context(), contextTP.Tracer("context"))

	_, err := sorting.SortOrdered([]int{3, 2, 1}, sorting.Quick[int], sorting.WithContext(ctx), sorting.WithObserver(obs))
	require.NoError(t, err)

	_, err = sorting.SortOrdered([]int{3, 2, 1}, sorting.Quick[int], sorting.WithObserver(obs))
	require.NoError(t, err)

	assert.Len(t, fromContext.GetSpans(), 1)
	assert.Len(t, fallback.GetSpans(), 1)
}

func TestObserver_WithoutTracer(t *testing.T) {
	t.Parallel()

	name := uuid.NewString()
	obs := spans.NewObserver(nil)

	_, err := sorting.Selection[int](nil, compare.Natural[int](), sorting.WithObserver(obs), sorting.WithName(name))
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	_, err = sorting.SortOrdered([]int{1}, sorting.Selection[int], sorting.WithObserver(obs), sorting.WithName(name))
	require.NoError(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(spans.WithoutTracerCounter.WithLabelValues(name)), 0)
}
