package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors are
// logged at error level and client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.Status()
		logger.FromRequest(r).WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
