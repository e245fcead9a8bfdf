package icons

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Element is a rendered icon: an svg root with ordered attributes and the
// icon's primitives as children. It implements templ.Component.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

var _ templ.Component = Element{}

// Attr returns the value of the named root attribute.
func (e Element) Attr(name string) (string, bool) {
	return lookupAttr(e.Attrs, name)
}

// Document returns a copy of e declaring the SVG namespace, suitable for a
// standalone .svg file.
func (e Element) Document() Element {
	if _, ok := e.Attr("xmlns"); ok {
		return e
	}
	attrs := make([]Attr, 0, len(e.Attrs)+1)
	attrs = append(attrs, Attr{Name: "xmlns", Value: svgNamespace})
	attrs = append(attrs, e.Attrs...)
	return Element{Tag: e.Tag, Attrs: attrs, Children: cloneNodes(e.Children)}
}

// String serializes e as SVG markup.
func (e Element) String() string {
	var builder strings.Builder
	writeElement(&builder, e)
	return builder.String()
}

// WriteTo writes the SVG markup for e to w.
func (e Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.String())
	return int64(n), err
}

// Render writes e as markup so it can be embedded in templ templates.
func (e Element) Render(_ context.Context, w io.Writer) error {
	_, err := e.WriteTo(w)
	return err
}

func writeElement(b *strings.Builder, e Element) {
	b.WriteString("<")
	b.WriteString(e.Tag)
	writeAttrs(b, e.Attrs)
	b.WriteString(">")
	writeNodes(b, e.Children)
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">")
}

func writeNodes(b *strings.Builder, nodes []Node) {
	for _, node := range nodes {
		b.WriteString("<")
		b.WriteString(string(node.Kind))
		writeAttrs(b, node.Attrs)
		b.WriteString("></")
		b.WriteString(string(node.Kind))
		b.WriteString(">")
	}
}

// writeAttrs escapes values on the way out; the tree itself keeps them verbatim.
func writeAttrs(b *strings.Builder, attrs []Attr) {
	for _, attr := range attrs {
		b.WriteString(" ")
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.Value))
		b.WriteString(`"`)
	}
}
