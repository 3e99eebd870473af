package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader   = "X-Trace-ID"
	maxTraceIDBytes = 128
)

// withTraceID echoes the caller's X-Trace-ID or mints a uuid, and puts a
// request logger carrying trace_id into the context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.With().Str("trace_id", traceID).Logger()
		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// validTraceID accepts non-empty visible ASCII up to maxTraceIDBytes.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDBytes {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
