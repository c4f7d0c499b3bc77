package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/lei/deezer-web/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded HTML templates
type Renderer struct {
	templates *template.Template
	logger    *logger.Logger
}

// NewRenderer parses the embedded templates with the formatting funcs
// registered
func NewRenderer(log *logger.Logger) (*Renderer, error) {
	t := template.New("").Funcs(template.FuncMap{
		"formatNumber":   FormatNumber,
		"formatDuration": FormatDuration,
	})
	t, err := t.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t, logger: log}, nil
}

// HTML executes the named template into a buffer first so a late template
// error still produces a clean 500 instead of a half-written page
func (rn *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := rn.templates.ExecuteTemplate(&buf, name, data); err != nil {
		rn.logger.Error("template execution failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Error renders the error page with the given status code
func (rn *Renderer) Error(w http.ResponseWriter, status int, message string) {
	rn.HTML(w, status, "error.html", errorPage{
		Status:  status,
		Text:    http.StatusText(status),
		Message: message,
	})
}

// errorPage is the render context for error.html
type errorPage struct {
	Status  int
	Text    string
	Message string
}
