package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures an Observer.
type Option func(*Observer)

// WithSpanName sets the span name. It defaults to "sort <name>", where name
// is the report name.
func WithSpanName(name string) Option {
	return func(o *Observer) {
		o.spanName = name
	}
}

// WithAttribute adds an attribute to every span.
//
//	spans.NewObserver(nil,
//	    spans.WithAttribute("tenant", attribute.StringValue(tenant)),
//	)
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(o *Observer) {
		o.attrs = append(o.attrs, attribute.KeyValue{Key: key, Value: value})
	}
}

// WithSpanKind sets the span kind. The default is SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(o *Observer) {
		o.spanKind = kind
	}
}

// WithErrorMessage sets a prefix for the status description of failed sorts.
func WithErrorMessage(description string) Option {
	return func(o *Observer) {
		o.failure = description
	}
}
