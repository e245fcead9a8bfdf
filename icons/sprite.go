package icons

import (
	"slices"
	"strings"
)

const symbolPrefix = "lucide-"

// SymbolID returns the sprite symbol id for a Lucide icon name.
func SymbolID(name string) string {
	return symbolPrefix + name
}

// Sprite builds a hidden svg holding one <symbol> per requested icon, each
// with the default presentation attributes. With no names every icon is
// included. Names may be aliases or identifiers; symbols are keyed by the
// canonical name and emitted in sorted order.
func Sprite(names ...string) (string, error) {
	selected := catalog
	if len(names) > 0 {
		seen := make(map[string]struct{}, len(names))
		selected = make([]*Icon, 0, len(names))
		for _, name := range names {
			ic, err := Lookup(name)
			if err != nil {
				return "", err
			}
			if _, ok := seen[ic.name]; ok {
				continue
			}
			seen[ic.name] = struct{}{}
			selected = append(selected, ic)
		}
		slices.SortFunc(selected, func(a, b *Icon) int {
			return strings.Compare(a.name, b.name)
		})
	}

	defaults := rootAttrs(DefaultProperties())
	var builder strings.Builder
	builder.WriteString(`<svg xmlns="` + svgNamespace + `" style="display:none">`)
	for _, ic := range selected {
		attrs := make([]Attr, 0, len(defaults))
		attrs = append(attrs, Attr{Name: "id", Value: SymbolID(ic.name)})
		for _, attr := range defaults {
			switch attr.Name {
			case "class", "width", "height":
				continue
			}
			attrs = append(attrs, attr)
		}
		builder.WriteString("<symbol")
		writeAttrs(&builder, attrs)
		builder.WriteString(">")
		writeNodes(&builder, ic.nodes)
		builder.WriteString("</symbol>")
	}
	builder.WriteString("</svg>")
	return builder.String(), nil
}
