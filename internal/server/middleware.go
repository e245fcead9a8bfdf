package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/louisbranch/lucide/internal/platform/log"
)

// requestLogger attaches a request-scoped logger to the context and writes
// one access log line per request.
func requestLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := log.ContextWithRequestID(r.Context(), middleware.GetReqID(r.Context()))
			logger := log.WithContext(ctx, base)
			ctx = logger.WithContext(ctx)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			event := logger.Info()
			if status >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event.
				Str("method", r.Method).
				Str(log.FieldPath, r.URL.Path).
				Int(log.FieldStatus, status).
				Int("bytes", ww.BytesWritten()).
				Dur(log.FieldDuration, time.Since(start)).
				Msg("http request")
		})
	}
}

// rateLimit limits requests per client IP with a sliding window.
func rateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}),
	)
}
