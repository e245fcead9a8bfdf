package icons

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrUnknownIcon is returned when a name matches no icon, alias or identifier.
var ErrUnknownIcon = errors.New("unknown icon")

var index = indexCatalog(catalog)

func indexCatalog(list []*Icon) map[string]*Icon {
	result := make(map[string]*Icon, len(list)*2)
	for _, ic := range list {
		result[ic.name] = ic
		result[ic.ident] = ic
		for _, alias := range ic.aliases {
			result[alias] = ic
		}
	}
	return result
}

// Lookup resolves an icon by Lucide name, deprecated alias or Go identifier.
func Lookup(name string) (*Icon, error) {
	ic, ok := index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return ic, nil
}

// Names returns the Lucide names of every icon in sorted order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, ic := range catalog {
		names[i] = ic.name
	}
	return names
}

// All returns the catalog sorted by name.
func All() []*Icon {
	result := make([]*Icon, len(catalog))
	copy(result, catalog)
	return result
}

// Render looks up name and renders it with p.
func Render(name string, p Properties) (Element, error) {
	ic, err := Lookup(name)
	if err != nil {
		return Element{}, err
	}
	return ic.Render(p), nil
}

// Component returns a templ component for the named icon. Unknown names fail
// when the component is rendered.
func Component(name string, p Properties) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		el, err := Render(name, p)
		if err != nil {
			return err
		}
		return el.Render(ctx, w)
	})
}
