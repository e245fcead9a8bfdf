package codegen

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/louisbranch/lucide/icons"
)

var (
	// ErrInvalidSVG marks source files that are not a Lucide icon.
	ErrInvalidSVG = errors.New("invalid icon svg")
)

// ParseSVG reads one icon file and returns its primitives in document order.
// The root must be an svg on the 24x24 grid; its presentation attributes are
// ignored because the renderer owns them.
func ParseSVG(r io.Reader) ([]icons.Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		nodes  []icons.Node
		depth  int
		inRoot bool
	)
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSVG, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if err := checkRoot(t); err != nil {
					return nil, err
				}
				inRoot = true
			case 2:
				node, err := parseNode(t)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
			default:
				return nil, fmt.Errorf("%w: nested <%s> is not supported", ErrInvalidSVG, t.Name.Local)
			}
		case xml.EndElement:
			depth--
		}
	}
	if !inRoot {
		return nil, fmt.Errorf("%w: missing <svg> root", ErrInvalidSVG)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no primitives", ErrInvalidSVG)
	}
	return nodes, nil
}

func checkRoot(el xml.StartElement) error {
	if el.Name.Local != "svg" {
		return fmt.Errorf("%w: root is <%s>, want <svg>", ErrInvalidSVG, el.Name.Local)
	}
	for _, attr := range el.Attr {
		if attr.Name.Local == "viewBox" {
			if attr.Value != icons.ViewBox {
				return fmt.Errorf("%w: viewBox %q, want %q", ErrInvalidSVG, attr.Value, icons.ViewBox)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: <svg> has no viewBox", ErrInvalidSVG)
}

func parseNode(el xml.StartElement) (icons.Node, error) {
	kind := icons.Kind(el.Name.Local)
	if !kind.Valid() {
		return icons.Node{}, fmt.Errorf("%w: unsupported element <%s>", ErrInvalidSVG, el.Name.Local)
	}
	attrs := make([]icons.Attr, 0, len(el.Attr))
	for _, attr := range el.Attr {
		if attr.Name.Space != "" {
			continue
		}
		attrs = append(attrs, icons.Attr{Name: attr.Name.Local, Value: attr.Value})
	}
	if len(attrs) == 0 {
		return icons.Node{}, fmt.Errorf("%w: <%s> has no attributes", ErrInvalidSVG, el.Name.Local)
	}
	return icons.Node{Kind: kind, Attrs: attrs}, nil
}
