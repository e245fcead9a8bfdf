package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/louisbranch/lucide/icons"
)

const checkSVG = `<svg
  xmlns="http://www.w3.org/2000/svg"
  width="24"
  height="24"
  viewBox="0 0 24 24"
  fill="none"
  stroke="currentColor"
  stroke-width="2"
  stroke-linecap="round"
  stroke-linejoin="round"
>
  <polyline points="20 6 9 17 4 12" />
</svg>
`

func TestParseSVG(t *testing.T) {
	nodes, err := ParseSVG(strings.NewReader(checkSVG))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []icons.Node{
		{Kind: icons.KindPolyline, Attrs: []icons.Attr{{Name: "points", Value: "20 6 9 17 4 12"}}},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSVGKeepsAttributeOrder(t *testing.T) {
	src := `<svg viewBox="0 0 24 24"><rect y="3" x="1" width="22" height="5" rx="2"/><!-- note --><line x2="14" x1="10" y1="12" y2="12"/></svg>`
	nodes, err := ParseSVG(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []icons.Node{
		{Kind: icons.KindRect, Attrs: []icons.Attr{
			{Name: "y", Value: "3"}, {Name: "x", Value: "1"}, {Name: "width", Value: "22"}, {Name: "height", Value: "5"}, {Name: "rx", Value: "2"},
		}},
		{Kind: icons.KindLine, Attrs: []icons.Attr{
			{Name: "x2", Value: "14"}, {Name: "x1", Value: "10"}, {Name: "y1", Value: "12"}, {Name: "y2", Value: "12"},
		}},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSVGDeclaredCharset(t *testing.T) {
	src := `<?xml version="1.0" encoding="ISO-8859-1"?>` + "\n" + `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/></svg>`
	nodes, err := ParseSVG(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Kind != icons.KindCircle {
		t.Fatalf("unexpected nodes: %+v", nodes)
	}
}

func TestParseSVGRejects(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{name: "wrong root", src: `<g viewBox="0 0 24 24"><path d="M0 0"/></g>`, wantMsg: "root is <g>"},
		{name: "wrong grid", src: `<svg viewBox="0 0 16 16"><path d="M0 0"/></svg>`, wantMsg: "viewBox"},
		{name: "no viewBox", src: `<svg><path d="M0 0"/></svg>`, wantMsg: "no viewBox"},
		{name: "unsupported element", src: `<svg viewBox="0 0 24 24"><text>hi</text></svg>`, wantMsg: "<text>"},
		{name: "nested group", src: `<svg viewBox="0 0 24 24"><path d="M0 0"><path d="M1 1"/></path></svg>`, wantMsg: "nested <path>"},
		{name: "empty", src: `<svg viewBox="0 0 24 24"></svg>`, wantMsg: "no primitives"},
		{name: "bare primitive", src: `<svg viewBox="0 0 24 24"><path/></svg>`, wantMsg: "no attributes"},
		{name: "malformed", src: `<svg viewBox="0 0 24 24"><path d="M0 0"></svg>`, wantMsg: "invalid icon svg"},
		{name: "no root", src: ``, wantMsg: "missing <svg> root"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSVG(strings.NewReader(tt.src))
			if !errors.Is(err, ErrInvalidSVG) {
				t.Fatalf("expected ErrInvalidSVG, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
