package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestHandler(t *testing.T) (http.Handler, *prometheus.Registry) {
	t.Helper()
	registry := prometheus.NewRegistry()
	return NewHandler(Config{Registry: registry, RateLimit: -1, Logger: zerolog.Nop()}), registry
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIconSVG(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/icons/check.svg")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeSVG, rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<svg xmlns="http://www.w3.org/2000/svg" class="" width="24" height="24"`), body)
	assert.Contains(t, body, `<polyline points="20 6 9 17 4 12"></polyline>`)
}

func TestIconSVGQueryProperties(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/icons/heart.svg?size=32&color=red&fill=blue&class=big&stroke-width=1.5")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{`class="big"`, `width="32"`, `height="32"`, `fill="blue"`, `stroke="red"`, `stroke-width="1.5"`} {
		assert.Contains(t, body, want)
	}
}

func TestIconSVGAcceptsAliasAndIdentifier(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, target := range []string{"/icons/home.svg", "/icons/Home.svg", "/icons/house.svg"} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestIconNotFound(t *testing.T) {
	h, registry := newTestHandler(t)

	tests := []string{
		"/icons/no-such-icon.svg",
		"/icons/check.gif",
		"/icons/check",
	}
	for _, target := range tests {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}

	m := newMetricsReader(t, registry)
	assert.Equal(t, 1.0, m.counter("lucide_icon_unknown_total"))
}

func TestIconPNG(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/icons/x.png?px=32&color=teal")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypePNG, rec.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestIconPNGBadRequest(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []string{
		"/icons/x.png?px=abc",
		"/icons/x.png?px=0",
		"/icons/x.png?px=5000",
		"/icons/x.png?color=nope",
		"/icons/square.png?fill=%23f",
	}
	for _, target := range tests {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestIconList(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/icons")

	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []iconSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.NotEmpty(t, summaries)
	byName := make(map[string]iconSummary, len(summaries))
	for _, s := range summaries {
		byName[s.Name] = s
	}
	assert.Equal(t, "Check", byName["check"].Identifier)
	assert.Equal(t, []string{"house"}, byName["home"].Aliases)
	assert.NotNil(t, byName["check"].Aliases)
}

func TestSprite(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/sprite.svg?names=x,check,x")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "<symbol"))
	assert.Less(t, strings.Index(body, `id="lucide-check"`), strings.Index(body, `id="lucide-x"`))

	rec = get(t, h, "/sprite.svg?names=check,bogus")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGallery(t *testing.T) {
	h, registry := newTestHandler(t)

	rec := get(t, h, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<li id="check"><a href="/icons/check.svg" title="Check">`)
	assert.Contains(t, body, `class="gallery-icon" width="32"`)

	m := newMetricsReader(t, registry)
	assert.Equal(t, 1.0, m.counterWithLabel("lucide_icon_renders_total", "format", formatHTML))
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	get(t, h, "/icons/check.svg")
	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lucide_icon_renders_total{format="svg"} 1`)
	assert.Contains(t, rec.Body.String(), `route="/icons/{file}"`)
}

func TestRateLimit(t *testing.T) {
	h := NewHandler(Config{RateLimit: 2, RateWindow: time.Minute, Logger: zerolog.Nop()})

	for i := 0; i < 2; i++ {
		rec := get(t, h, "/icons")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := get(t, h, "/icons")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Health checks bypass the limiter.
	assert.Equal(t, http.StatusOK, get(t, h, "/healthz").Code)
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(Config{RateLimit: -1, Logger: zerolog.New(&buf)})

	get(t, h, "/icons/check.svg")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "http request", line["message"])
	assert.Equal(t, "/icons/check.svg", line["path"])
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.NotEmpty(t, line["request_id"])
}

func TestTracingHandler(t *testing.T) {
	h := NewHandler(Config{RateLimit: -1, Tracing: true, Logger: zerolog.Nop()})

	assert.Equal(t, http.StatusOK, get(t, h, "/icons/check.svg").Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/healthz").Code)
}

func TestNewRequiresAddress(t *testing.T) {
	_, err := New(Config{HTTPAddr: "  "})
	require.Error(t, err)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv, err := New(Config{HTTPAddr: "127.0.0.1:0", RateLimit: -1, Logger: zerolog.Nop()})
	require.NoError(t, err)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	transport := &http.Transport{}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + listener.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))
	transport.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeRequiresArguments(t *testing.T) {
	srv, err := New(Config{HTTPAddr: "127.0.0.1:0", RateLimit: -1, Logger: zerolog.Nop()})
	require.NoError(t, err)

	require.Error(t, srv.Serve(context.Background(), nil))
	var nilServer *Server
	require.Error(t, nilServer.ListenAndServe(context.Background()))
}

type metricsReader struct {
	t        *testing.T
	registry *prometheus.Registry
}

func newMetricsReader(t *testing.T, registry *prometheus.Registry) metricsReader {
	return metricsReader{t: t, registry: registry}
}

func (r metricsReader) counter(name string) float64 {
	r.t.Helper()
	families, err := r.registry.Gather()
	require.NoError(r.t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func (r metricsReader) counterWithLabel(name, label, value string) float64 {
	r.t.Helper()
	families, err := r.registry.Gather()
	require.NoError(r.t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == label && pair.GetValue() == value {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
