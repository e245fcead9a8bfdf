package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Render formats used as metric labels.
const (
	formatSVG    = "svg"
	formatPNG    = "png"
	formatSprite = "sprite"
	formatHTML   = "html"
)

type metrics struct {
	registry        *prometheus.Registry
	renders         *prometheus.CounterVec
	unknownLookups  prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

func newMetrics(registry *prometheus.Registry) *metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)
	return &metrics{
		registry: registry,
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lucide_icon_renders_total",
			Help: "Icons rendered, by output format",
		}, []string{"format"}),
		unknownLookups: factory.NewCounter(prometheus.CounterOpts{
			Name: "lucide_icon_unknown_total",
			Help: "Requests naming an icon that is not in the catalog",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lucide_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// middleware records request latency labeled by chi route pattern so icon
// names never become label values.
func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
