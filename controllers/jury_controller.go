package controllers

import (
	"net/http"

	"github.com/blogem/contest-jury/routes"
)

// JuryController handles the jury start page
type JuryController struct {
	base
}

// NewJuryController creates a new jury controller
func NewJuryController(b base) *JuryController {
	return &JuryController{base: b}
}

type juryLink struct {
	Label string
	URL   string
}

// Index handles GET /jury
func (c *JuryController) Index(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		Page
		Links []juryLink
	}{
		Page: c.page(r, "Jury", "jury"),
		Links: []juryLink{
			{Label: "Audit log", URL: routes.MustURL(routes.JuryAuditLog, nil)},
			{Label: "Public scoreboard", URL: routes.MustURL(routes.PublicScoreboard, nil)},
		},
	}

	renderTemplate(w, "jury", "jury_index.html", templateData)
}
