package codegen

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// reserved holds the exported API of package icons; icon functions must not
// shadow it.
var reserved = map[string]struct{}{
	"All":                   {},
	"Attr":                  {},
	"CatalogMarkdown":       {},
	"Component":             {},
	"DefaultColor":          {},
	"DefaultFill":           {},
	"DefaultProperties":     {},
	"DefaultSize":           {},
	"DefaultStrokeLinecap":  {},
	"DefaultStrokeLinejoin": {},
	"DefaultStrokeWidth":    {},
	"Element":               {},
	"ErrUnknownIcon":        {},
	"Icon":                  {},
	"Kind":                  {},
	"KindCircle":            {},
	"KindEllipse":           {},
	"KindLine":              {},
	"KindPath":              {},
	"KindPolygon":           {},
	"KindPolyline":          {},
	"KindRect":              {},
	"Lookup":                {},
	"Names":                 {},
	"Node":                  {},
	"Properties":            {},
	"Render":                {},
	"RenderRole":            {},
	"Role":                  {},
	"RoleAdd":               {},
	"RoleCatalog":           {},
	"RoleClose":             {},
	"RoleCollapse":          {},
	"RoleDefinition":        {},
	"RoleDelete":            {},
	"RoleDownload":          {},
	"RoleEdit":              {},
	"RoleError":             {},
	"RoleExpand":            {},
	"RoleExternalLink":      {},
	"RoleFavorite":          {},
	"RoleGeneric":           {},
	"RoleIcon":              {},
	"RoleIconOrDefault":     {},
	"RoleInfo":              {},
	"RoleLogOut":            {},
	"RoleMenu":              {},
	"RoleNotification":      {},
	"RoleProfile":           {},
	"RoleRemove":            {},
	"RoleSearch":            {},
	"RoleSettings":          {},
	"RoleSuccess":           {},
	"RoleUpload":            {},
	"RoleWarning":           {},
	"Sprite":                {},
	"SymbolID":              {},
	"ViewBox":               {},
}

// ValidName reports whether name is a kebab-case Lucide icon name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Identifier converts a kebab-case icon name into an exported Go identifier:
// "arrow-up-right" becomes "ArrowUpRight".
func Identifier(name string) string {
	title := cases.Title(language.Und)
	var builder strings.Builder
	for _, part := range strings.Split(name, "-") {
		builder.WriteString(title.String(part))
	}
	ident := builder.String()
	if ident == "" {
		return ident
	}
	if unicode.IsDigit(rune(ident[0])) {
		ident = "Icon" + ident
	}
	if _, ok := reserved[ident]; ok {
		ident += "Icon"
	}
	return ident
}

func kindConst(kind string) string {
	return "Kind" + cases.Title(language.Und).String(kind)
}
