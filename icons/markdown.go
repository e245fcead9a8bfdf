package icons

import (
	"strconv"
	"strings"
)

// CatalogMarkdown renders the icon and role catalogs as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go generate ./icons`.\n\n")
	builder.WriteString("## Icons\n\n")
	builder.WriteString("| Name | Function | Primitives | Aliases |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, ic := range catalog {
		builder.WriteString("| `")
		builder.WriteString(ic.name)
		builder.WriteString("` | `")
		builder.WriteString(ic.ident)
		builder.WriteString("` | ")
		builder.WriteString(strconv.Itoa(len(ic.nodes)))
		builder.WriteString(" | ")
		builder.WriteString(strings.Join(ic.aliases, ", "))
		builder.WriteString(" |\n")
	}
	builder.WriteString("\n## Roles\n\n")
	builder.WriteString("| Role | Icon | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range roleCatalog {
		builder.WriteString("| ")
		builder.WriteString(def.Name)
		builder.WriteString(" | `")
		builder.WriteString(RoleIconOrDefault(def.Role))
		builder.WriteString("` | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
