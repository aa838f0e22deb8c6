package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/sanonone/lexikit/pkg/comparison"
)

//go:embed static/* templates/*.html
var content embed.FS

// GetHandler returns an http.Handler that serves the static UI files.
// It strips the "static" prefix from the embedded filesystem.
func GetHandler() http.Handler {
	fsys, err := fs.Sub(content, "static")
	if err != nil {
		panic(err) // Should never happen with embed
	}
	return http.FileServer(http.FS(fsys))
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	funcs := template.FuncMap{
		"rowClass": rowClass,
		"item": func(line string) string {
			return strings.TrimPrefix(line, "- ")
		},
	}
	return template.New("pages").Funcs(funcs).ParseFS(content, "templates/*.html")
}

// rowClass styles a comparison row by its difference classification.
func rowClass(difference string) string {
	switch {
	case difference == comparison.DifferenceError:
		return "error"
	case strings.HasPrefix(difference, "Different"):
		return "different"
	}
	return "same"
}
