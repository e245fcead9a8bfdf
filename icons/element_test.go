package icons

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestElementString(t *testing.T) {
	got := Check(Properties{Class: "ok"}).String()
	want := `<svg class="ok" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
		`<polyline points="20 6 9 17 4 12"></polyline></svg>`
	if got != want {
		t.Fatalf("markup mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestElementEscapesOnOutputOnly(t *testing.T) {
	el := X(Properties{Class: `a"b<c`})
	if got, _ := el.Attr("class"); got != `a"b<c` {
		t.Fatalf("expected tree to keep raw value, got %q", got)
	}
	markup := el.String()
	if strings.Contains(markup, `a"b<c`) {
		t.Fatalf("expected escaped class in markup: %s", markup)
	}
	if !strings.Contains(markup, `class="a&#34;b&lt;c"`) {
		t.Fatalf("unexpected escaping in markup: %s", markup)
	}
}

func TestElementDocumentAddsNamespace(t *testing.T) {
	el := Plus(Properties{})
	doc := el.Document()
	if got, _ := doc.Attr("xmlns"); got != "http://www.w3.org/2000/svg" {
		t.Fatalf("xmlns = %q", got)
	}
	if _, ok := el.Attr("xmlns"); ok {
		t.Fatal("document mutated the original element")
	}
	if again := doc.Document(); len(again.Attrs) != len(doc.Attrs) {
		t.Fatal("document added a second xmlns")
	}
	if !strings.HasPrefix(doc.String(), `<svg xmlns="http://www.w3.org/2000/svg" class=""`) {
		t.Fatalf("unexpected document prefix: %s", doc.String())
	}
}

func TestElementRendersAsComponent(t *testing.T) {
	var buf bytes.Buffer
	el := Menu(Properties{})
	if err := el.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != el.String() {
		t.Fatalf("component output differs from String()")
	}
	if got := strings.Count(buf.String(), "<line "); got != 3 {
		t.Fatalf("expected 3 lines in menu, got %d", got)
	}
}

func TestElementWriteToReportsBytes(t *testing.T) {
	var buf bytes.Buffer
	n, err := Circle(Properties{}).WriteTo(&buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("reported %d bytes, wrote %d", n, buf.Len())
	}
}
