// Package web embeds the HTML pages served by the handler package.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page. Templates are named after their file.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
