package codegen

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/louisbranch/lucide/icons"
)

func TestLoadDirMatchesCatalog(t *testing.T) {
	entries, err := LoadDir("../../third_party/lucide/icons")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(icons.Names(), entryNames(entries)); diff != "" {
		t.Fatalf("generated catalog is stale (-catalog +source):\n%s", diff)
	}
	for _, entry := range entries {
		ic, err := icons.Lookup(entry.Name)
		if err != nil {
			t.Fatalf("lookup %s: %v", entry.Name, err)
		}
		if ic.Identifier() != entry.Ident {
			t.Errorf("%s identifier = %s, source gives %s", entry.Name, ic.Identifier(), entry.Ident)
		}
		if diff := cmp.Diff(ic.Nodes(), entry.Nodes); diff != "" {
			t.Errorf("%s nodes are stale (-catalog +source):\n%s", entry.Name, diff)
		}
		if len(ic.Aliases()) != 0 || len(entry.Aliases) != 0 {
			if diff := cmp.Diff(ic.Aliases(), entry.Aliases); diff != "" {
				t.Errorf("%s aliases are stale (-catalog +source):\n%s", entry.Name, diff)
			}
		}
	}
}

func TestLoadFSReadsAliasForms(t *testing.T) {
	fsys := fstest.MapFS{
		"x-circle.svg":  {Data: []byte(`<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/></svg>`)},
		"x-circle.json": {Data: []byte(`{"tags": ["cancel"], "aliases": ["circle-x", {"name": "cross-circle", "deprecated": true}]}`)},
		"check.svg":     {Data: []byte(checkSVG)},
		"README.md":     {Data: []byte("ignored")},
	}
	entries, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"check", "x-circle"}, entryNames(entries)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"circle-x", "cross-circle"}, entries[1].Aliases); diff != "" {
		t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
	}
	if entries[1].Ident != "XCircle" {
		t.Fatalf("ident = %s", entries[1].Ident)
	}
}

func TestLoadFSSortsByNameNotPath(t *testing.T) {
	fsys := fstest.MapFS{
		"x-circle.svg": {Data: []byte(`<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="10"/></svg>`)},
		"x.svg":        {Data: []byte(`<svg viewBox="0 0 24 24"><path d="M18 6 6 18"/></svg>`)},
		"link-2.svg":   {Data: []byte(`<svg viewBox="0 0 24 24"><line x1="8" x2="16" y1="12" y2="12"/></svg>`)},
		"link.svg":     {Data: []byte(`<svg viewBox="0 0 24 24"><path d="M10 13a5 5 0 0 0 7.54.54"/></svg>`)},
	}
	entries, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"link", "link-2", "x", "x-circle"}, entryNames(entries)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if _, err := Generate("icons", entries); err != nil {
		t.Fatalf("generate from loaded entries: %v", err)
	}
}

func TestLoadFSErrors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantMsg string
	}{
		{name: "empty", fsys: fstest.MapFS{}, wantMsg: "no .svg files"},
		{name: "bad name", fsys: fstest.MapFS{"Check.svg": {Data: []byte(checkSVG)}}, wantMsg: "not kebab-case"},
		{name: "bad svg", fsys: fstest.MapFS{"check.svg": {Data: []byte(`<svg/>`)}}, wantMsg: "load check.svg"},
		{
			name: "bad metadata",
			fsys: fstest.MapFS{
				"check.svg":  {Data: []byte(checkSVG)},
				"check.json": {Data: []byte(`{"aliases": [1]}`)},
			},
			wantMsg: "parse check.json",
		},
		{
			name: "bad alias",
			fsys: fstest.MapFS{
				"check.svg":  {Data: []byte(checkSVG)},
				"check.json": {Data: []byte(`{"aliases": ["Tick"]}`)},
			},
			wantMsg: `alias "Tick"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}
