// Package codegen turns an upstream Lucide icons directory into the Go source
// of the icons catalog.
package codegen
