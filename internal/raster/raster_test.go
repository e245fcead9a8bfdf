package raster

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/louisbranch/lucide/icons"
)

func TestPNGEncodesSquareImage(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(context.Background(), &buf, icons.Check(icons.Properties{}), Options{Pixels: 48}); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if got := img.Bounds().Dx(); got != 48 {
		t.Fatalf("width = %d, want 48", got)
	}
	if got := img.Bounds().Dy(); got != 48 {
		t.Fatalf("height = %d, want 48", got)
	}
}

func TestImageDrawsStroke(t *testing.T) {
	img, err := Image(context.Background(), icons.Minus(icons.Properties{}), Options{Pixels: 24, Color: "red"})
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	// minus is a horizontal line across y=12.
	c := img.RGBAAt(12, 12)
	if c.A == 0 {
		t.Fatalf("center pixel is transparent")
	}
	if c.R == 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("center pixel = %+v, want red", c)
	}
	if corner := img.RGBAAt(0, 0); corner.A != 0 {
		t.Fatalf("corner pixel = %+v, want transparent", corner)
	}
}

func TestPNGEncodesImage(t *testing.T) {
	el := icons.Minus(icons.Properties{})
	opts := Options{Pixels: 24, Color: "red"}
	want, err := Image(context.Background(), el, opts)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	var buf bytes.Buffer
	if err := PNG(context.Background(), &buf, el, opts); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	for _, pt := range [][2]int{{0, 0}, {12, 12}, {4, 12}, {12, 4}} {
		r1, g1, b1, a1 := got.At(pt[0], pt[1]).RGBA()
		r2, g2, b2, a2 := want.At(pt[0], pt[1]).RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
			t.Fatalf("pixel %v differs between PNG and Image", pt)
		}
	}
}

func TestImageIgnoresClass(t *testing.T) {
	if _, err := Image(context.Background(), icons.Heart(icons.Properties{Class: "icon icon-heart"}), Options{}); err != nil {
		t.Fatalf("Image: %v", err)
	}
}

func TestPNGRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "negative pixels", opts: Options{Pixels: -1}},
		{name: "too large", opts: Options{Pixels: MaxPixels + 1}},
		{name: "unknown color", opts: Options{Color: "not-a-color"}},
		{name: "current color", opts: Options{Color: "currentColor"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := PNG(context.Background(), &buf, icons.X(icons.Properties{}), tt.opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("err = %v, want ErrInvalidOptions", err)
			}
			if buf.Len() != 0 {
				t.Fatalf("wrote %d bytes on error", buf.Len())
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	got, err := Options{}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Pixels != DefaultPixels {
		t.Fatalf("pixels = %d, want %d", got.Pixels, DefaultPixels)
	}
	if got.Color != DefaultColor {
		t.Fatalf("color = %q, want %q", got.Color, DefaultColor)
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := map[string]string{
		"red":     "#ff0000",
		"Blue":    "#0000ff",
		"#00ff00": "#00ff00",
		"#fff":    "#ffffff",
	}
	for in, want := range tests {
		got, err := normalizeColor(in)
		if err != nil {
			t.Fatalf("normalizeColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("normalizeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParsePixels(t *testing.T) {
	if px, err := ParsePixels(""); err != nil || px != 0 {
		t.Fatalf("ParsePixels(\"\") = %d, %v", px, err)
	}
	if px, err := ParsePixels("128"); err != nil || px != 128 {
		t.Fatalf("ParsePixels(128) = %d, %v", px, err)
	}
	for _, bad := range []string{"abc", "0", "-4", "2048"} {
		if _, err := ParsePixels(bad); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("ParsePixels(%q) err = %v", bad, err)
		}
	}
}

func TestPrepareSubstitutesCurrentColor(t *testing.T) {
	el := prepare(icons.Check(icons.Properties{Class: "x"}), Options{Pixels: 16, Color: "#112233"})
	if _, ok := el.Attr("class"); ok {
		t.Fatalf("class should be dropped")
	}
	if got, _ := el.Attr("stroke"); got != "#112233" {
		t.Fatalf("stroke = %q", got)
	}
	if got, _ := el.Attr("width"); got != "16" {
		t.Fatalf("width = %q", got)
	}
	if got, _ := el.Attr("xmlns"); got == "" {
		t.Fatalf("missing xmlns")
	}
}

func TestPNGRejectsUnrenderableFill(t *testing.T) {
	for _, fill := range []string{"#f", "not-a-color"} {
		var buf bytes.Buffer
		err := PNG(context.Background(), &buf, icons.Square(icons.Properties{Fill: fill}), Options{})
		if !errors.Is(err, ErrUnrenderable) {
			t.Fatalf("fill %q: err = %v, want ErrUnrenderable", fill, err)
		}
	}
}
