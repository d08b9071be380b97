package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orbital"

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests served.",
	}, []string{"method", "route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "operations_total",
		Help:      "Count of space data API operations.",
	}, []string{"operation", "status"})
	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "operation_duration_seconds",
		Help:      "Duration of space data API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	ledgerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "events_total",
		Help:      "Count of ledger mutations by kind.",
	}, []string{"kind"})
	ledgerPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "event_publish_failures_total",
		Help:      "Count of ledger events that could not be streamed.",
	})

	debrisObjectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "telemetry",
		Name:      "debris_objects_generated_total",
		Help:      "Count of synthetic debris objects generated.",
	})
)

func ObserveHTTPRequest(method, route string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}

func ObserveUpstream(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	upstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	upstreamRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

func ObserveLedgerEvent(kind string) {
	ledgerEventsTotal.WithLabelValues(kind).Inc()
}

func ObservePublishFailure() {
	ledgerPublishFailuresTotal.Inc()
}

func ObserveDebrisGenerated(count int) {
	debrisObjectsTotal.Add(float64(count))
}
