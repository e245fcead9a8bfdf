package icons

// Icon is one entry of the catalog. Icons are defined in catalog_gen.go and
// never change at runtime.
type Icon struct {
	name    string
	ident   string
	aliases []string
	nodes   []Node
}

// Name returns the kebab-case Lucide name, e.g. "arrow-up-right".
func (ic *Icon) Name() string { return ic.name }

// Identifier returns the exported Go function name for the icon.
func (ic *Icon) Identifier() string { return ic.ident }

// Aliases returns the deprecated names that still resolve to the icon.
func (ic *Icon) Aliases() []string {
	result := make([]string, len(ic.aliases))
	copy(result, ic.aliases)
	return result
}

// Nodes returns a copy of the icon's primitives.
func (ic *Icon) Nodes() []Node {
	return cloneNodes(ic.nodes)
}

// Render builds the svg element for the icon. Unset properties take their
// defaults; p itself is never modified.
func (ic *Icon) Render(p Properties) Element {
	return Element{
		Tag:      "svg",
		Attrs:    rootAttrs(p.Resolve()),
		Children: cloneNodes(ic.nodes),
	}
}

func rootAttrs(p Properties) []Attr {
	return []Attr{
		{Name: "class", Value: p.Class},
		{Name: "width", Value: p.Size},
		{Name: "height", Value: p.Size},
		{Name: "viewBox", Value: ViewBox},
		{Name: "fill", Value: p.Fill},
		{Name: "stroke", Value: p.Color},
		{Name: "stroke-width", Value: p.StrokeWidth},
		{Name: "stroke-linecap", Value: p.StrokeLinecap},
		{Name: "stroke-linejoin", Value: p.StrokeLinejoin},
	}
}
