package icons

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func defaultRootAttrs() []Attr {
	return []Attr{
		{Name: "class", Value: ""},
		{Name: "width", Value: "24"},
		{Name: "height", Value: "24"},
		{Name: "viewBox", Value: "0 0 24 24"},
		{Name: "fill", Value: "none"},
		{Name: "stroke", Value: "currentColor"},
		{Name: "stroke-width", Value: "2"},
		{Name: "stroke-linecap", Value: "round"},
		{Name: "stroke-linejoin", Value: "round"},
	}
}

func TestCheckRendersSinglePolyline(t *testing.T) {
	el := Check(Properties{})
	want := Element{
		Tag:   "svg",
		Attrs: defaultRootAttrs(),
		Children: []Node{
			{Kind: KindPolyline, Attrs: []Attr{{Name: "points", Value: "20 6 9 17 4 12"}}},
		},
	}
	if diff := cmp.Diff(want, el); diff != "" {
		t.Fatalf("check mismatch (-want +got):\n%s", diff)
	}
}

func TestHeartWithSizeAndColor(t *testing.T) {
	el := Heart(Properties{Size: "32", Color: "red"})
	for name, want := range map[string]string{
		"width":  "32",
		"height": "32",
		"stroke": "red",
		"fill":   "none",
	} {
		if got, _ := el.Attr(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if len(el.Children) != 1 || el.Children[0].Kind != KindPath {
		t.Fatalf("expected heart to be a single path, got %+v", el.Children)
	}
}

func TestFillOverrideAppliesToEveryIcon(t *testing.T) {
	for _, ic := range All() {
		el := ic.Render(Properties{Fill: "blue"})
		if got, _ := el.Attr("fill"); got != "blue" {
			t.Fatalf("%s fill = %q, want blue", ic.Name(), got)
		}
	}
}

func TestIconsShareRootAttributes(t *testing.T) {
	props := Properties{Class: "nav", Size: "16", StrokeWidth: "1.5"}
	x := X(props)
	plus := Plus(props)
	if diff := cmp.Diff(x.Attrs, plus.Attrs); diff != "" {
		t.Fatalf("root attributes differ (-x +plus):\n%s", diff)
	}
	if cmp.Equal(x.Children, plus.Children) {
		t.Fatal("expected x and plus children to differ")
	}
}

func TestRootAttributeOrder(t *testing.T) {
	el := Menu(Properties{})
	want := []string{"class", "width", "height", "viewBox", "fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin"}
	got := make([]string, len(el.Attrs))
	for i, attr := range el.Attrs {
		got[i] = attr.Name
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attribute order mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	props := Properties{Color: "#333"}
	first := ChevronDown(props)
	second := ChevronDown(props)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated render differs (-first +second):\n%s", diff)
	}
}

func TestRenderedChildrenAreIndependentCopies(t *testing.T) {
	el := Check(Properties{})
	el.Children[0].Attrs[0].Value = "0 0 1 1"

	again := Check(Properties{})
	if got, _ := again.Children[0].Attr("points"); got != "20 6 9 17 4 12" {
		t.Fatalf("catalog fragment was mutated through a rendered element: %q", got)
	}
}

func TestEveryIconHasValidPrimitives(t *testing.T) {
	for _, ic := range All() {
		nodes := ic.Nodes()
		if len(nodes) == 0 {
			t.Errorf("%s has no primitives", ic.Name())
		}
		for _, node := range nodes {
			if !node.Kind.Valid() {
				t.Errorf("%s has unsupported primitive %q", ic.Name(), node.Kind)
			}
			if len(node.Attrs) == 0 {
				t.Errorf("%s has a %s without attributes", ic.Name(), node.Kind)
			}
		}
	}
}
