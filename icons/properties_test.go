package icons

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveAppliesDefaults(t *testing.T) {
	got := Properties{}.Resolve()
	if diff := cmp.Diff(DefaultProperties(), got); diff != "" {
		t.Fatalf("resolved zero properties mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveKeepsSetFields(t *testing.T) {
	p := Properties{Class: "icon", Size: "32", Color: "red", StrokeLinecap: "square"}
	got := p.Resolve()
	want := Properties{
		Class:          "icon",
		Size:           "32",
		Fill:           "none",
		Color:          "red",
		StrokeWidth:    "2",
		StrokeLinecap:  "square",
		StrokeLinejoin: "round",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolve mismatch (-want +got):\n%s", diff)
	}
	if p.Fill != "" {
		t.Fatalf("resolve mutated caller properties: %+v", p)
	}
}

func TestResolvePassesValuesVerbatim(t *testing.T) {
	got := Properties{Size: "not-a-number", StrokeWidth: "-1"}.Resolve()
	if got.Size != "not-a-number" || got.StrokeWidth != "-1" {
		t.Fatalf("expected values passed through, got %+v", got)
	}
}
