// Package templates holds the embedded HTML pages served by the application.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// New parses all embedded pages. Templates are addressed by filename,
// e.g. "homepage.html".
func New() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
