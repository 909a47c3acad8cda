// Package metrics defines the prometheus collectors of the registry.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "registry"

// Outcomes of an observed operation.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Operations counts and times facade operations, labelled by operation name
// and outcome. A failure additionally carries its result code.
type Operations struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewOperations registers the operation collectors on reg, or on the default
// registerer when reg is nil. Registering twice reuses the existing collectors.
func NewOperations(reg prometheus.Registerer) (*Operations, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	calls, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Number of facade operations by outcome and result code.",
	}, []string{"operation", "outcome", "code"}))
	if err != nil {
		return nil, err
	}

	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Latency of facade operations.",
		Buckets:   DefaultBuckets,
	}, []string{"operation"}))
	if err != nil {
		return nil, err
	}

	return &Operations{calls: calls, latency: latency}, nil
}

// Observe records one call of operation. code is empty on success.
func (o *Operations) Observe(operation, code string, took time.Duration) {
	if o == nil {
		return
	}

	outcome := OutcomeSuccess
	if code != "" {
		outcome = OutcomeFailure
	}
	o.calls.WithLabelValues(operation, outcome, code).Inc()
	o.latency.WithLabelValues(operation).Observe(took.Seconds())
}

// HTTP counts and times HTTP requests by route pattern.
type HTTP struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"}))
	if err != nil {
		return nil, err
	}

	latency, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route"}))
	if err != nil {
		return nil, err
	}

	return &HTTP{requests: requests, latency: latency}, nil
}

func (h *HTTP) Observe(method, route, status string, took time.Duration) {
	if h == nil {
		return
	}

	h.requests.WithLabelValues(method, route, status).Inc()
	h.latency.WithLabelValues(method, route).Observe(took.Seconds())
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}
