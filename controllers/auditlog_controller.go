package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/routes"
)

// AuditLogController handles the jury audit log page
type AuditLogController struct {
	base
}

// NewAuditLogController creates a new audit log controller
func NewAuditLogController(b base) *AuditLogController {
	return &AuditLogController{base: b}
}

// Index handles GET /jury/auditlog/
func (c *AuditLogController) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pageNumber := parsePageNumber(r.URL.Query().Get("page"))

	timeFormat, err := c.services.Configuration.TimeFormat(ctx)
	if err != nil {
		c.logger.Error("failed to load time format", "error", err)
		http.Error(w, "Failed to load configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	page, err := c.services.AuditLog.GetPage(ctx, pageNumber, timeFormat)
	if err != nil {
		c.logger.Error("failed to load audit log", "page", pageNumber, "error", err)
		http.Error(w, "Failed to load audit log: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Page
		Fields     []models.TableField
		Options    models.TableOptions
		Rows       []models.DisplayRow
		Pagination models.Pagination
	}{
		Page:       c.page(r, "Audit log", "auditlog"),
		Fields:     models.AuditLogFields,
		Options:    models.TableOptions{Ordering: false, Searching: false},
		Rows:       page.Rows,
		Pagination: newPagination(routes.JuryAuditLog, page.CurrentPage, page.TotalPages),
	}

	renderTemplate(w, "auditlog", "auditlog.html", templateData)
}

// parsePageNumber reads the page query parameter; anything unusable means page 1
func parsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// newPagination links every page of a paged route
func newPagination(route string, current, total int) models.Pagination {
	pageURL := func(n int) string {
		return routes.MustURL(route, map[string]string{"page": strconv.Itoa(n)})
	}

	p := models.Pagination{
		CurrentPage: current,
		TotalPages:  total,
		Pages:       make([]models.PageLink, 0, total),
	}
	for n := 1; n <= total; n++ {
		p.Pages = append(p.Pages, models.PageLink{Number: n, URL: pageURL(n), Current: n == current})
	}
	if current > 1 && current-1 <= total {
		p.PrevURL = pageURL(current - 1)
	}
	if current < total {
		p.NextURL = pageURL(current + 1)
	}
	return p
}
