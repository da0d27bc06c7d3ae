package middleware

import (
	"cmp"
	"log/slog"
	"net/http"
	"time"

	"github.com/zenazn/goji/web/mutil"
)

// Logger returns middleware that logs each request's method, URI, address,
// status, duration, and trace id.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lw := mutil.WrapWriter(w)

			next.ServeHTTP(lw, r)

			// WrapWriter reports 0 when the handler never called WriteHeader.
			status := cmp.Or(lw.Status(), http.StatusOK)

			logger.Info(
				"request",
				"method", r.Method,
				"uri", r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"status", status,
				"duration", time.Since(start),
				"trace_id", TraceIDFrom(r.Context()),
			)
		})
	}
}
