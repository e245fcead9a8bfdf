package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const tracingOperation = "iconserver"

// NewHandler assembles the icon routes and middleware stack.
func NewHandler(cfg Config) http.Handler {
	h := &handler{metrics: newMetrics(cfg.Registry)}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(cfg.Logger))
	r.Use(h.metrics.middleware)

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", h.metrics.handler())

	r.Group(func(r chi.Router) {
		limit, window := cfg.RateLimit, cfg.RateWindow
		if limit == 0 {
			limit = defaultRateLimit
		}
		if window <= 0 {
			window = defaultRateWindow
		}
		if limit > 0 {
			r.Use(rateLimit(limit, window))
		}
		r.Get("/", h.handleGallery)
		r.Get("/icons", h.handleList)
		r.Get("/icons/{file}", h.handleIcon)
		r.Get("/sprite.svg", h.handleSprite)
	})

	if !cfg.Tracing {
		return r
	}
	return otelhttp.NewHandler(r, tracingOperation,
		otelhttp.WithFilter(shouldTrace),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// shouldTrace skips health and metrics scrapes.
func shouldTrace(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/metrics":
		return false
	}
	return true
}
