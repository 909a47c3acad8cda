package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// Pprof returns a handler exposing net/http/pprof under prefix, e.g.
// "/debug/pprof". Named profiles (heap, goroutine, allocs...) are served by
// the index handler.
func Pprof(prefix string) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// pprof.Index expects the full /debug/pprof/ path
		r.URL.Path = "/debug/pprof" + r.URL.Path
		pprof.Index(w, r)
	})
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return http.StripPrefix(prefix, mux)
}
