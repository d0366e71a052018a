package spans

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// reportWithoutTracerCounter counts reports that were dropped because
// neither the context nor the observer had a tracer.
//
// Metric name: amp_sort_spans_without_tracer_total
// Labels:
//   - name: the report name (see sorting.WithName)
var reportWithoutTracerCounter = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "amp",
		Subsystem: "sort_spans",
		Name:      "without_tracer_total",
		Help:      "Total number of sort reports observed without a tracer",
	},
	[]string{"name"},
)

