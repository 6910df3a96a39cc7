// Package web holds the HTML templates of the catalog pages and the helpers
// handlers use to render them.
package web

import (
	"embed"
	"html"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	moviemodel "movie-catalog/internal/domains/movie/model"
	"movie-catalog/internal/shared/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap is available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		// Stored text is HTML-escaped once at validation time; undo that
		// before html/template escapes it again on output.
		"unescape": html.UnescapeString,
		"isSelected": func(m *moviemodel.Movie, id uuid.UUID) bool {
			return m != nil && m.DirectorID == id
		},
		"hasGenre": func(m *moviemodel.Movie, id uuid.UUID) bool {
			return m != nil && m.HasGenre(id)
		},
	}
}

// Templates parses the embedded page set.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Load installs the page set on engine.
func Load(engine *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)
	return nil
}

// Render executes the named page with the per-request values every page
// needs (the CSRF token and the form error list).
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["csrf"] = c.GetString(middleware.CSRFTokenKey)
	if _, ok := data["errors"]; !ok {
		data["errors"] = nil
	}
	c.HTML(status, name, data)
}

// Error renders the error page.
func Error(c *gin.Context, status int, message string) {
	Render(c, status, "error", gin.H{
		"title":      http.StatusText(status),
		"message":    message,
		"request_id": c.GetString(middleware.RequestIDKey),
	})
}

// NotFound renders a 404 page for a missing entity.
func NotFound(c *gin.Context, what string) {
	Error(c, http.StatusNotFound, what+" not found")
}

// ServerError logs err and renders a 500 page without exposing it.
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	log.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	Error(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}
