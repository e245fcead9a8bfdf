package server

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/lucide/icons"
)

const galleryStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#1f2937}` +
	`ul{display:grid;grid-template-columns:repeat(auto-fill,minmax(8rem,1fr));gap:1rem;list-style:none;padding:0}` +
	`li a{display:flex;flex-direction:column;align-items:center;gap:.5rem;padding:1rem;border:1px solid #e5e7eb;border-radius:.5rem;color:inherit;text-decoration:none}` +
	`li a:hover{border-color:#9ca3af}` +
	`code{font-size:.75rem}`

// gallery renders an HTML page listing every icon with its default look.
func gallery(list []*icons.Icon) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<title>Lucide icons</title><style>`)
		b.WriteString(galleryStyle)
		b.WriteString(`</style></head><body>`)
		b.WriteString(`<h1>Lucide icons</h1><p>`)
		b.WriteString(strconv.Itoa(len(list)))
		b.WriteString(` icons. Append <code>.svg</code> or <code>.png</code> to <code>/icons/{name}</code>.</p><ul>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, ic := range list {
			if err := galleryItem(ic).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></body></html>`)
		return err
	})
}

func galleryItem(ic *icons.Icon) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(ic.Name())
		if _, err := io.WriteString(w, `<li id="`+name+`"><a href="/icons/`+name+`.svg" title="`+
			templ.EscapeString(ic.Identifier())+`">`); err != nil {
			return err
		}
		if err := ic.Render(icons.Properties{Size: "32", Class: "gallery-icon"}).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<code>`+name+`</code></a></li>`)
		return err
	})
}
