package icons

// Kind identifies one of the SVG drawing primitives an icon is built from.
type Kind string

const (
	KindPath     Kind = "path"
	KindLine     Kind = "line"
	KindCircle   Kind = "circle"
	KindRect     Kind = "rect"
	KindPolygon  Kind = "polygon"
	KindPolyline Kind = "polyline"
	KindEllipse  Kind = "ellipse"
)

var kinds = map[Kind]struct{}{
	KindPath:     {},
	KindLine:     {},
	KindCircle:   {},
	KindRect:     {},
	KindPolygon:  {},
	KindPolyline: {},
	KindEllipse:  {},
}

// Valid reports whether k is a supported primitive.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Attr is a single markup attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one primitive of an icon fragment. Attrs keep their authored order.
type Node struct {
	Kind  Kind
	Attrs []Attr
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	return lookupAttr(n.Attrs, name)
}

func (n Node) clone() Node {
	attrs := make([]Attr, len(n.Attrs))
	copy(attrs, n.Attrs)
	return Node{Kind: n.Kind, Attrs: attrs}
}

func cloneNodes(nodes []Node) []Node {
	result := make([]Node, len(nodes))
	for i, node := range nodes {
		result[i] = node.clone()
	}
	return result
}

func lookupAttr(attrs []Attr, name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}
