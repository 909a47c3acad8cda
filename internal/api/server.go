// Package api configures and exposes the HTTP server, routes, metrics and
// related middleware of the registry.
package api

import (
	"fmt"
	"net/http"
	"registry/internal/api/handler/v1handler"
	"registry/internal/config"
	"registry/pkg/controller"
	"registry/pkg/metrics"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes limits every request body. Photo uploads are bounded by it too.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins is the CORS allow list; empty allows any origin.
	AllowedOrigins []string
}

// NewOptions maps the HTTP settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// Registerer receives the HTTP collectors; prometheus.DefaultRegisterer when nil.
	Registerer prometheus.Registerer
	// Gatherer is served at MetricsPath; prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
}

// NewHandler builds the routed and middleware wrapped handler. It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - v1 API routes
// - pprof endpoints for profiling
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	httpMetrics, err := metrics.NewHTTP(deps.Registerer)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, controller.Routed(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// v1 api
	v1handler.New(deps.Deps, opts.MaxBodyBytes).Register(mux)

	// pprof
	mux.Handle("/debug/pprof/", controller.Routed(controller.Pprof("/debug/pprof")))

	var handler http.Handler = mux
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"success":false,"errors":[{"code":"GENERIC_ERROR","message":"request timed out"}]}`) //nolint: lll
	}
	handler = controller.WithBodyLimit(opts.MaxBodyBytes)(handler)
	handler = controller.WithCORS(opts.AllowedOrigins...)(handler)
	handler = controller.WithMetrics(httpMetrics)(handler)
	handler = controller.WithLogger(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
