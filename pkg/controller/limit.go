package controller

import "net/http"

// WithBodyLimit caps request bodies at limit bytes. Reads past the limit fail
// and the handler sees *http.MaxBytesError. A non-positive limit disables the cap.
func WithBodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
