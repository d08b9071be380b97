package middleware

import (
	"net/http"
	"orbital/internal/metrics"
	"time"
)

type metricsMiddleware struct{}

func NewMetricsMiddleware() *metricsMiddleware {
	return &metricsMiddleware{}
}

// Metrics records every request against the mux pattern that served it, so
// path parameters do not blow up label cardinality. It must wrap a handler
// that runs the mux on the same *http.Request.
func (m *metricsMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		metrics.ObserveHTTPRequest(r.Method, r.Pattern, rec.status, started)
	})
}
