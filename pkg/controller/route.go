package controller

import (
	"context"
	"net/http"
)

type routeKey struct{}

type routeInfo struct {
	pattern string
}

// Routed wraps a handler registered on a ServeMux so that the matched pattern
// becomes visible to WithLogger and WithMetrics, however deep they sit in the
// middleware chain.
func Routed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, ok := r.Context().Value(routeKey{}).(*routeInfo); ok {
			info.pattern = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}

// trackRoute returns a request carrying a route holder, reusing the one set
// by an outer middleware when present.
func trackRoute(r *http.Request) (*http.Request, *routeInfo) {
	if info, ok := r.Context().Value(routeKey{}).(*routeInfo); ok {
		return r.WithContext(r.Context()), info
	}
	info := &routeInfo{}

	return r.WithContext(context.WithValue(r.Context(), routeKey{}, info)), info
}

// routeOf returns the ServeMux pattern that matched req, which is only known
// after the mux has served it.
func routeOf(req *http.Request, info *routeInfo) string {
	switch {
	case info != nil && info.pattern != "":
		return info.pattern
	case req.Pattern != "":
		return req.Pattern
	default:
		return "unmatched"
	}
}
