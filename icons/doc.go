// Package icons renders the Lucide icon set as SVG element trees.
//
// Every icon is a fixed list of SVG primitives drawn on a 24x24 grid. The
// exported per-icon functions (Check, Heart, X, ...) all delegate to the same
// renderer, so icons differ only in their children: the root svg attributes
// are derived from Properties alone. Icons can also be resolved by name with
// Lookup and Render, or by intent through Role.
package icons

//go:generate go run ../internal/tools/icongen -src ../third_party/lucide/icons -out catalog_gen.go -pkg icons
//go:generate go run ../internal/tools/icondocgen
