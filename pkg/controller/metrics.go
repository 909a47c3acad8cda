package controller

import (
	"net/http"
	"registry/pkg/metrics"
	"strconv"
	"time"
)

// WithMetrics returns a middleware recording every request on m, labelled by
// the ServeMux pattern rather than the raw path. Handlers should be wrapped
// with Routed when other middlewares sit between this one and the mux.
func WithMetrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			req, route := trackRoute(r)

			next.ServeHTTP(rec, req)

			m.Observe(r.Method, routeOf(req, route), strconv.Itoa(rec.status), time.Since(start))
		})
	}
}
