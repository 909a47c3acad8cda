// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Counts and times requests by route pattern.
//   - WithBodyLimit: Caps the size of request bodies.
//
//   - Routed: Records the matched ServeMux pattern for WithLogger and WithMetrics.
//
// Provided helpers:
//   - Pprof: Returns a handler exposing net/http/pprof under a path prefix.
package controller
