// Package raster converts rendered icons into PNG images.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/louisbranch/lucide/icons"
	"github.com/louisbranch/lucide/internal/platform/otel"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/image/colornames"
)

const (
	// DefaultPixels is the edge length used when Options.Pixels is zero.
	DefaultPixels = 64
	// MaxPixels bounds the edge length of a rasterized icon.
	MaxPixels = 1024
	// DefaultColor replaces currentColor when Options.Color is empty.
	DefaultColor = "#000000"
)

const currentColor = "currentColor"

// tracerName is the instrumentation scope for raster spans.
const tracerName = "github.com/louisbranch/lucide/internal/raster"

var (
	// ErrInvalidOptions reports a pixel size or color the rasterizer cannot use.
	ErrInvalidOptions = errors.New("invalid raster options")
	// ErrUnrenderable reports an element whose attribute values the
	// rasterizer cannot draw, such as a malformed fill color.
	ErrUnrenderable = errors.New("unrenderable icon")
)

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Options controls rasterization.
type Options struct {
	// Pixels is the width and height of the output image.
	Pixels int
	// Color is an SVG color name or #rgb/#rrggbb value substituted for
	// currentColor.
	Color string
}

// Resolve applies defaults and validates o.
func (o Options) Resolve() (Options, error) {
	if o.Pixels == 0 {
		o.Pixels = DefaultPixels
	}
	if o.Pixels < 0 || o.Pixels > MaxPixels {
		return Options{}, fmt.Errorf("%w: pixels %d outside 1..%d", ErrInvalidOptions, o.Pixels, MaxPixels)
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	hex, err := normalizeColor(o.Color)
	if err != nil {
		return Options{}, err
	}
	o.Color = hex
	return o, nil
}

// ParsePixels parses a pixel size from a query value. Empty means default.
func ParsePixels(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	px, err := strconv.Atoi(value)
	if err != nil || px <= 0 || px > MaxPixels {
		return 0, fmt.Errorf("%w: pixels %q", ErrInvalidOptions, value)
	}
	return px, nil
}

// PNG rasterizes el into a square PNG written to w.
func PNG(ctx context.Context, w io.Writer, el icons.Element, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "raster.PNG")
	defer span.End()

	img, err := Image(ctx, el, opts)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if err := png.Encode(w, img); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Image rasterizes el into a square RGBA image; PNG encodes its result.
func Image(ctx context.Context, el icons.Element, opts Options) (*image.RGBA, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := otel.Tracer(tracerName).Start(ctx, "raster.Image")
	defer span.End()

	img, err := rasterize(el, opts, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return img, nil
}

func rasterize(el icons.Element, opts Options, span trace.Span) (img *image.RGBA, err error) {
	// oksvg panics on some malformed values (short hex colors among them).
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrUnrenderable, r)
		}
	}()

	resolved, err := opts.Resolve()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("raster.pixels", resolved.Pixels),
		attribute.String("raster.color", resolved.Color),
	)

	doc := prepare(el, resolved)
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc.String()), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: parse svg: %w", ErrUnrenderable, err)
	}

	size := resolved.Pixels
	icon.SetTarget(0, 0, float64(size), float64(size))
	img = image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

// prepare rewrites el into something the rasterizer understands: class is
// dropped, the root is sized to the target and currentColor becomes concrete.
func prepare(el icons.Element, opts Options) icons.Element {
	el = el.Document()
	size := strconv.Itoa(opts.Pixels)
	attrs := make([]icons.Attr, 0, len(el.Attrs))
	for _, attr := range el.Attrs {
		switch attr.Name {
		case "class":
			continue
		case "width", "height":
			attr.Value = size
		}
		attrs = append(attrs, substitute(attr, opts.Color))
	}
	children := make([]icons.Node, len(el.Children))
	for i, node := range el.Children {
		nodeAttrs := make([]icons.Attr, len(node.Attrs))
		for j, attr := range node.Attrs {
			nodeAttrs[j] = substitute(attr, opts.Color)
		}
		children[i] = icons.Node{Kind: node.Kind, Attrs: nodeAttrs}
	}
	return icons.Element{Tag: el.Tag, Attrs: attrs, Children: children}
}

func substitute(attr icons.Attr, hex string) icons.Attr {
	if strings.EqualFold(strings.TrimSpace(attr.Value), currentColor) {
		attr.Value = hex
	}
	return attr
}

func normalizeColor(value string) (string, error) {
	value = strings.TrimSpace(value)
	if named, ok := colornames.Map[strings.ToLower(value)]; ok {
		return hexColor(named), nil
	}
	if !hexPattern.MatchString(value) {
		return "", fmt.Errorf("%w: color %q", ErrInvalidOptions, value)
	}
	parsed, err := oksvg.ParseSVGColor(value)
	if err != nil {
		return "", fmt.Errorf("%w: color %q: %v", ErrInvalidOptions, value, err)
	}
	return hexColor(parsed), nil
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
