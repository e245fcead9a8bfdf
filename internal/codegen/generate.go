package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/louisbranch/lucide/icons"
)

// Header marks generated files.
const Header = "// Code generated by icongen. DO NOT EDIT."

var sourceTemplate = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"quote":   strconv.Quote,
	"kind":    func(k icons.Kind) string { return kindConst(string(k)) },
	"strings": quoteList,
	"attrs":   attrList,
}).Parse(Header + `

package {{.Package}}
{{range .Entries}}
var icon{{.Ident}} = Icon{
	name: {{quote .Name}},
	ident: {{quote .Ident}},
{{- if .Aliases}}
	aliases: []string{ {{- strings .Aliases -}} },
{{- end}}
	nodes: []Node{
{{- range .Nodes}}
		{Kind: {{kind .Kind}}, Attrs: []Attr{ {{- attrs .Attrs -}} }},
{{- end}}
	},
}
{{end}}
var catalog = []*Icon{
{{- range .Entries}}
	&icon{{.Ident}},
{{- end}}
}
{{range .Entries}}
// {{.Ident}} renders the "{{.Name}}" icon.
func {{.Ident}}(p Properties) Element { return icon{{.Ident}}.Render(p) }
{{end}}`))

// Generate renders the catalog source for entries. Entries must already be
// sorted by name; duplicated names, aliases or identifiers are rejected.
func Generate(pkg string, entries []Entry) ([]byte, error) {
	if err := validate(entries); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, struct {
		Package string
		Entries []Entry
	}{Package: pkg, Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("render catalog: %w", err)
	}
	src, err := imports.Process("catalog_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format catalog: %w", err)
	}
	return src, nil
}

func validate(entries []Entry) error {
	owners := make(map[string]string, len(entries)*2)
	claim := func(key, owner string) error {
		if prev, ok := owners[key]; ok {
			return fmt.Errorf("%q is used by both %s and %s", key, prev, owner)
		}
		owners[key] = owner
		return nil
	}
	for i, entry := range entries {
		if i > 0 && entries[i-1].Name >= entry.Name {
			return fmt.Errorf("entries not sorted at %s", entry.Name)
		}
		if entry.Ident == "" {
			return fmt.Errorf("%s has no identifier", entry.Name)
		}
		if _, ok := reserved[entry.Ident]; ok {
			return fmt.Errorf("%s: identifier %s collides with package API", entry.Name, entry.Ident)
		}
		if len(entry.Nodes) == 0 {
			return fmt.Errorf("%s has no primitives", entry.Name)
		}
		if err := claim(entry.Name, entry.Name); err != nil {
			return err
		}
		if err := claim("ident:"+entry.Ident, entry.Name); err != nil {
			return err
		}
		for _, a := range entry.Aliases {
			if err := claim(a, entry.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}

func attrList(attrs []icons.Attr) string {
	parts := make([]string, len(attrs))
	for i, attr := range attrs {
		parts[i] = "{Name: " + strconv.Quote(attr.Name) + ", Value: " + strconv.Quote(attr.Value) + "}"
	}
	return strings.Join(parts, ", ")
}
