// Package web bundles the HTML templates and the default local snapshot.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates. Each page template is
// addressed by its file name (e.g. "home.tmpl").
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}
