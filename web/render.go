package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"saaarchi/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"join":     strings.Join,
	"firstN":   firstN,
	"statuses": models.Statuses,
}

// Renderer executes the page templates embedded in the binary.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named page and returns the complete document, so a
// template error never leaves a half-written response.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
