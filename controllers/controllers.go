package controllers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/blogem/contest-jury/authenticator"
	"github.com/blogem/contest-jury/routes"
	"github.com/blogem/contest-jury/services"
	"github.com/blogem/contest-jury/templates"
	"github.com/blogem/contest-jury/userctx"
)

// Page carries the fields the layout template reads on every page
type Page struct {
	Title       string
	CurrentPage string
	Error       string
	Success     string
	User        *userctx.Identity
	IsAdmin     bool
	Static      bool
	Refresh     *Refresh
}

// Refresh makes the browser reload URL after Seconds
type Refresh struct {
	Seconds int
	URL     string
}

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"route": func(name string) (string, error) {
		return routes.URL(name, nil)
	},
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl, err := template.New(templateName).Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Render fully before writing so a failing template never leaves half a page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}

// Options carries the settings controllers need from the configuration
type Options struct {
	// Provider is nil when no identity provider is configured
	Provider          authenticator.Provider
	Logger            *slog.Logger
	AdminRole         string
	ScoreboardRefresh time.Duration
}

// base is embedded by every controller
type base struct {
	services  *services.Services
	logger    *slog.Logger
	adminRole string
}

// page fills the layout fields for the current request
func (b *base) page(r *http.Request, title, currentPage string) Page {
	id, _ := userctx.GetIdentity(r.Context())
	return Page{
		Title:       title,
		CurrentPage: currentPage,
		User:        id,
		IsAdmin:     id.HasRole(b.adminRole),
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth       *AuthController
	Jury       *JuryController
	AuditLog   *AuditLogController
	Scoreboard *ScoreboardController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, opts Options) *Controllers {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	b := base{services: services, logger: logger, adminRole: opts.AdminRole}

	return &Controllers{
		Auth:       NewAuthController(b, opts.Provider),
		Jury:       NewJuryController(b),
		AuditLog:   NewAuditLogController(b),
		Scoreboard: NewScoreboardController(b, opts.ScoreboardRefresh),
	}
}
