package middleware

import (
	"context"
	"net/http"

	"github.com/rs/xid"
)

// TraceHeader carries the request trace id in both directions.
const TraceHeader = "X-Trace-Id"

type traceKey struct{}

// TraceID propagates the inbound X-Trace-Id header, generating one when absent,
// and echoes it on the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(TraceHeader)
		if id == "" {
			id = xid.New().String()
		}

		w.Header().Set(TraceHeader, id)
		next.ServeHTTP(w, r.WithContext(WithTraceID(r.Context(), id)))
	})
}

// WithTraceID returns a copy of ctx carrying the trace id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

// TraceIDFrom returns the trace id stored in ctx, or "" if none.
func TraceIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
