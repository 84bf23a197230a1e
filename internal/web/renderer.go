package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"buildhub/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Renderer.
const (
	PageHome          = "home"
	PageAdmin         = "admin"
	PageLogin         = "login"
	PageSignupConfirm = "signup_confirm"
	PageError         = "error"
)

var pages = []string{PageHome, PageAdmin, PageLogin, PageSignupConfirm, PageError}

// Page is the data passed to every template. User is nil for guests.
type Page struct {
	Title   string
	User    *model.UserView
	Message string
}

// Renderer implements echo.Renderer over the embedded templates.
// Each page is parsed together with the layout shell.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all page templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
