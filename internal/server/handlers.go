package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/louisbranch/lucide/icons"
	"github.com/louisbranch/lucide/internal/platform/log"
	"github.com/louisbranch/lucide/internal/raster"
)

const (
	contentTypeSVG  = "image/svg+xml"
	contentTypePNG  = "image/png"
	contentTypeJSON = "application/json"
	contentTypeHTML = "text/html; charset=utf-8"
	cacheControl    = "public, max-age=86400"
)

type handler struct {
	metrics *metrics
}

// iconSummary is the JSON shape of one catalog entry.
type iconSummary struct {
	Name       string   `json:"name"`
	Identifier string   `json:"identifier"`
	Aliases    []string `json:"aliases"`
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) handleList(w http.ResponseWriter, r *http.Request) {
	all := icons.All()
	summaries := make([]iconSummary, 0, len(all))
	for _, ic := range all {
		aliases := ic.Aliases()
		if aliases == nil {
			aliases = []string{}
		}
		summaries = append(summaries, iconSummary{
			Name:       ic.Name(),
			Identifier: ic.Identifier(),
			Aliases:    aliases,
		})
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		log.FromContext(r.Context()).Error().Err(err).Msg("encode icon list")
	}
}

func (h *handler) handleIcon(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)

	ic, err := icons.Lookup(name)
	if err != nil {
		h.unknownIcon(w, r, name)
		return
	}

	switch ext {
	case ".svg":
		h.writeSVG(w, r, ic)
	case ".png":
		h.writePNG(w, r, ic)
	default:
		http.NotFound(w, r)
	}
}

func (h *handler) writeSVG(w http.ResponseWriter, r *http.Request, ic *icons.Icon) {
	doc := ic.Render(propertiesFromQuery(r)).Document()
	w.Header().Set("Content-Type", contentTypeSVG)
	w.Header().Set("Cache-Control", cacheControl)
	if _, err := doc.WriteTo(w); err != nil {
		log.FromContext(r.Context()).Error().Err(err).Str(log.FieldIcon, ic.Name()).Msg("write svg")
		return
	}
	h.metrics.renders.WithLabelValues(formatSVG).Inc()
}

func (h *handler) writePNG(w http.ResponseWriter, r *http.Request, ic *icons.Icon) {
	query := r.URL.Query()
	px, err := raster.ParsePixels(query.Get("px"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The stroke stays currentColor so the color parameter is validated by
	// the rasterizer instead of failing deep inside the SVG parser.
	props := propertiesFromQuery(r)
	props.Color = ""

	var buf bytes.Buffer
	err = raster.PNG(r.Context(), &buf, ic.Render(props), raster.Options{
		Pixels: px,
		Color:  query.Get("color"),
	})
	switch {
	case errors.Is(err, raster.ErrInvalidOptions), errors.Is(err, raster.ErrUnrenderable):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.FromContext(r.Context()).Error().Err(err).
			Str(log.FieldIcon, ic.Name()).
			Str(log.FieldFormat, formatPNG).
			Msg("rasterize icon")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypePNG)
	w.Header().Set("Cache-Control", cacheControl)
	if _, err := buf.WriteTo(w); err != nil {
		log.FromContext(r.Context()).Error().Err(err).Str(log.FieldIcon, ic.Name()).Msg("write png")
		return
	}
	h.metrics.renders.WithLabelValues(formatPNG).Inc()
}

func (h *handler) handleSprite(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, raw := range strings.Split(r.URL.Query().Get("names"), ",") {
		if name := strings.TrimSpace(raw); name != "" {
			names = append(names, name)
		}
	}
	sprite, err := icons.Sprite(names...)
	if err != nil {
		h.metrics.unknownLookups.Inc()
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", contentTypeSVG)
	w.Header().Set("Cache-Control", cacheControl)
	_, _ = w.Write([]byte(sprite))
	h.metrics.renders.WithLabelValues(formatSprite).Inc()
}

func (h *handler) handleGallery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if err := gallery(icons.All()).Render(r.Context(), w); err != nil {
		log.FromContext(r.Context()).Error().Err(err).Msg("render gallery")
		return
	}
	h.metrics.renders.WithLabelValues(formatHTML).Inc()
}

func (h *handler) unknownIcon(w http.ResponseWriter, r *http.Request, name string) {
	h.metrics.unknownLookups.Inc()
	log.FromContext(r.Context()).Debug().Str(log.FieldIcon, name).Msg("unknown icon")
	http.NotFound(w, r)
}

// propertiesFromQuery maps query parameters onto icon properties verbatim.
func propertiesFromQuery(r *http.Request) icons.Properties {
	query := r.URL.Query()
	return icons.Properties{
		Class:          query.Get("class"),
		Size:           query.Get("size"),
		Fill:           query.Get("fill"),
		Color:          query.Get("color"),
		StrokeWidth:    query.Get("stroke-width"),
		StrokeLinecap:  query.Get("stroke-linecap"),
		StrokeLinejoin: query.Get("stroke-linejoin"),
	}
}
