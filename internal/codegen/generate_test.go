package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/louisbranch/lucide/icons"
)

func sampleEntries() []Entry {
	return []Entry{
		{
			Name:  "check",
			Ident: "Check",
			Nodes: []icons.Node{
				{Kind: icons.KindPolyline, Attrs: []icons.Attr{{Name: "points", Value: "20 6 9 17 4 12"}}},
			},
		},
		{
			Name:    "x-circle",
			Ident:   "XCircle",
			Aliases: []string{"circle-x"},
			Nodes: []icons.Node{
				{Kind: icons.KindCircle, Attrs: []icons.Attr{{Name: "cx", Value: "12"}, {Name: "cy", Value: "12"}, {Name: "r", Value: "10"}}},
				{Kind: icons.KindLine, Attrs: []icons.Attr{{Name: "x1", Value: "15"}, {Name: "y1", Value: "9"}, {Name: "x2", Value: "9"}, {Name: "y2", Value: "15"}}},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	src, err := Generate("icons", sampleEntries())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(src)
	if !strings.HasPrefix(out, Header+"\n\npackage icons\n") {
		t.Fatalf("unexpected header:\n%s", out)
	}
	for _, want := range []string{
		`{Kind: KindPolyline, Attrs: []Attr{{Name: "points", Value: "20 6 9 17 4 12"}}},`,
		`aliases: []string{"circle-x"},`,
		"func Check(p Properties) Element { return iconCheck.Render(p) }",
		"func XCircle(p Properties) Element { return iconXCircle.Render(p) }",
		"\t&iconCheck,\n\t&iconXCircle,\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q", want)
		}
	}

	file, err := parser.ParseFile(token.NewFileSet(), "catalog_gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	if !ast.IsGenerated(file) {
		t.Fatal("expected generated file marker")
	}
	var funcs []string
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs = append(funcs, fn.Name.Name)
		}
	}
	if strings.Join(funcs, ",") != "Check,XCircle" {
		t.Fatalf("unexpected functions: %v", funcs)
	}
}

func TestGenerateRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Entry) []Entry
		wantMsg string
	}{
		{
			name: "alias shadows name",
			mutate: func(entries []Entry) []Entry {
				entries[1].Aliases = []string{"check"}
				return entries
			},
			wantMsg: `"check" is used by both check and x-circle`,
		},
		{
			name: "duplicate identifier",
			mutate: func(entries []Entry) []Entry {
				entries[1].Ident = "Check"
				return entries
			},
			wantMsg: "used by both",
		},
		{
			name: "reserved identifier",
			mutate: func(entries []Entry) []Entry {
				entries[0].Ident = "Render"
				return entries
			},
			wantMsg: "collides with package API",
		},
		{
			name: "unsorted",
			mutate: func(entries []Entry) []Entry {
				return []Entry{entries[1], entries[0]}
			},
			wantMsg: "not sorted",
		},
		{
			name: "empty icon",
			mutate: func(entries []Entry) []Entry {
				entries[0].Nodes = nil
				return entries
			},
			wantMsg: "no primitives",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate("icons", tt.mutate(sampleEntries()))
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}
