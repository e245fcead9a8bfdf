package icons

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestCatalogIsSortedAndUnique(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected catalog to include icons")
	}
	if !slices.IsSorted(names) {
		t.Fatal("expected names in sorted order")
	}
	seen := make(map[string]string)
	for _, ic := range All() {
		for _, key := range append([]string{ic.Name(), ic.Identifier()}, ic.Aliases()...) {
			if owner, ok := seen[key]; ok {
				t.Errorf("%q claimed by both %s and %s", key, owner, ic.Name())
			}
			seen[key] = ic.Name()
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "check", want: "check"},
		{query: "arrow-up-right", want: "arrow-up-right"},
		{query: "ArrowUpRight", want: "arrow-up-right"},
		{query: "circle-check", want: "check-circle"},
		{query: "ellipsis", want: "more-horizontal"},
		{query: "octagon-alert", want: "alert-octagon"},
		{query: "ComponentIcon", want: "component"},
	}
	for _, tt := range tests {
		ic, err := Lookup(tt.query)
		if err != nil {
			t.Fatalf("lookup %q: %v", tt.query, err)
		}
		if ic.Name() != tt.want {
			t.Errorf("lookup %q = %s, want %s", tt.query, ic.Name(), tt.want)
		}
	}
}

// appIcons lists every icon the simulator front end renders, keyed by the
// component name it uses.
var appIcons = []struct {
	name   string
	render func(Properties) Element
}{
	{name: "arrow-left-right", render: ArrowLeftRight},
	{name: "arrow-right", render: ArrowRight},
	{name: "check", render: Check},
	{name: "chevron-down", render: ChevronDown},
	{name: "chevron-right", render: ChevronRight},
	{name: "chevron-up", render: ChevronUp},
	{name: "clock", render: Clock},
	{name: "copy", render: Copy},
	{name: "file-text", render: FileText},
	{name: "forward", render: Forward},
	{name: "globe", render: Globe},
	{name: "help-circle", render: HelpCircle},
	{name: "import", render: Import},
	{name: "layers", render: Layers},
	{name: "list-ordered", render: ListOrdered},
	{name: "list-video", render: ListVideo},
	{name: "menu", render: Menu},
	{name: "monitor", render: Monitor},
	{name: "moon", render: Moon},
	{name: "plus", render: Plus},
	{name: "save", render: Save},
	{name: "sun", render: Sun},
	{name: "upload", render: Upload},
	{name: "wand", render: Wand},
	{name: "wrench", render: Wrench},
	{name: "x", render: X},
}

func TestLookupAppIcons(t *testing.T) {
	for _, tt := range appIcons {
		t.Run(tt.name, func(t *testing.T) {
			ic, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("lookup %q: %v", tt.name, err)
			}
			byIdent, err := Lookup(ic.Identifier())
			if err != nil {
				t.Fatalf("lookup %q: %v", ic.Identifier(), err)
			}
			if byIdent != ic {
				t.Fatalf("identifier %s resolves to %s", ic.Identifier(), byIdent.Name())
			}
			props := Properties{Class: "h-6 mr-4"}
			if got, want := tt.render(props).String(), ic.Render(props).String(); got != want {
				t.Fatalf("component output differs from catalog entry:\n%s\n%s", got, want)
			}
		})
	}
}

func TestCatalogSize(t *testing.T) {
	// The bundled source tree tracks the full upstream set, not a subset.
	if n := len(Names()); n < 1500 {
		t.Fatalf("catalog has %d icons, want at least 1500", n)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-icon")
	if !errors.Is(err, ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
	if !strings.Contains(err.Error(), "no-such-icon") {
		t.Fatalf("expected error to name the icon: %v", err)
	}
}

func TestRenderByName(t *testing.T) {
	el, err := Render("heart", Properties{Size: "32"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, _ := el.Attr("width"); got != "32" {
		t.Fatalf("width = %q", got)
	}
	if _, err := Render("nope", Properties{}); !errors.Is(err, ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Component("x", Properties{}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != X(Properties{}).String() {
		t.Fatalf("unexpected component markup: %s", buf.String())
	}
	buf.Reset()
	if err := Component("nope", Properties{}).Render(context.Background(), &buf); !errors.Is(err, ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for unknown icon, got %q", buf.String())
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0] = nil
	if All()[0] == nil {
		t.Fatal("expected All to return a copy")
	}
}

func TestCatalogMarkdownListsIconsAndRoles(t *testing.T) {
	markdown := CatalogMarkdown()
	if strings.TrimSpace(markdown) == "" {
		t.Fatal("expected catalog markdown to be non-empty")
	}
	for _, name := range Names() {
		if !strings.Contains(markdown, "| `"+name+"` |") {
			t.Errorf("catalog markdown missing icon %s", name)
		}
	}
	for _, def := range RoleCatalog() {
		if !strings.Contains(markdown, "| "+def.Name+" |") {
			t.Errorf("catalog markdown missing role %s", def.Name)
		}
	}
}
