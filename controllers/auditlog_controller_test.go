package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/routes"
	"github.com/blogem/contest-jury/services"
)

func samplePage(current, total int) *services.AuditLogPage {
	return &services.AuditLogPage{
		CurrentPage: current,
		TotalPages:  total,
		Rows: []models.DisplayRow{{
			ID:    models.TableCell{Value: "1234"},
			When:  models.TableCell{Value: "14:05", Title: "2024-03-01 14:05:09 (UTC)", SortValue: "1709301909"},
			Who:   models.TableCell{Value: "admin"},
			Where: models.TableCell{Value: "c5", SortValue: "5", Link: "/jury/contests/5"},
			What:  models.TableCell{Value: "problem 3 updated timelimit", Link: "/jury/problems/3"},
		}},
	}
}

func TestAuditLogController_Index(t *testing.T) {
	env := newTestEnv(t, nil)
	env.config.EXPECT().TimeFormat(mock.Anything).Return("%H:%M", nil)
	env.auditLog.EXPECT().GetPage(mock.Anything, 2, "%H:%M").Return(samplePage(2, 3), nil)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/jury/auditlog/?page=2", nil))
	rec := serve(env.ctrl.AuditLog.Index, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Audit log</title>")
	assert.Contains(t, body, `data-ordering="false"`)
	assert.Contains(t, body, `data-searching="false"`)
	for _, field := range models.AuditLogFields {
		assert.Contains(t, body, ">"+field.Title+"</th>")
	}
	assert.Contains(t, body, `data-sort="1709301909"`)
	assert.Contains(t, body, `title="2024-03-01 14:05:09 (UTC)"`)
	assert.Contains(t, body, `<a href="/jury/contests/5">c5</a>`)
	assert.Contains(t, body, `<a href="/jury/problems/3">problem 3 updated timelimit</a>`)
	assert.Contains(t, body, `href="/jury/auditlog/?page=1"`)
	assert.Contains(t, body, `href="/jury/auditlog/?page=3"`)
	assert.Contains(t, body, `<span class="current">2</span>`)
}

func TestAuditLogController_InvalidPageMeansFirstPage(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.config.EXPECT().TimeFormat(mock.Anything).Return("%H:%M", nil)
			env.auditLog.EXPECT().GetPage(mock.Anything, 1, "%H:%M").Return(samplePage(1, 1), nil)

			req := asAdmin(httptest.NewRequest(http.MethodGet, "/jury/auditlog/?page="+raw, nil))
			rec := serve(env.ctrl.AuditLog.Index, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAuditLogController_EmptyPage(t *testing.T) {
	env := newTestEnv(t, nil)
	env.config.EXPECT().TimeFormat(mock.Anything).Return("%H:%M", nil)
	env.auditLog.EXPECT().GetPage(mock.Anything, 9, "%H:%M").
		Return(&services.AuditLogPage{CurrentPage: 9, TotalPages: 2}, nil)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/jury/auditlog/?page=9", nil))
	rec := serve(env.ctrl.AuditLog.Index, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No audit log entries on this page.")
}

func TestAuditLogController_StoreFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.config.EXPECT().TimeFormat(mock.Anything).Return("%H:%M", nil)
	env.auditLog.EXPECT().GetPage(mock.Anything, 1, "%H:%M").Return(nil, errors.New("database is locked"))

	rec := serve(env.ctrl.AuditLog.Index, asAdmin(httptest.NewRequest(http.MethodGet, "/jury/auditlog/", nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load audit log")
	assert.NotContains(t, rec.Body.String(), "<table")
}

func TestAuditLogController_ConfigurationFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	env.config.EXPECT().TimeFormat(mock.Anything).Return("", errors.New("configuration \"time_format\" is not a string"))

	rec := serve(env.ctrl.AuditLog.Index, asAdmin(httptest.NewRequest(http.MethodGet, "/jury/auditlog/", nil)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewPagination(t *testing.T) {
	p := newPagination(routes.JuryAuditLog, 2, 3)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	require.Len(t, p.Pages, 3)
	assert.True(t, p.Pages[1].Current)
	assert.False(t, p.Pages[0].Current)
	assert.Equal(t, "/jury/auditlog/?page=1", p.PrevURL)
	assert.Equal(t, "/jury/auditlog/?page=3", p.NextURL)

	first := newPagination(routes.JuryAuditLog, 1, 1)
	assert.Empty(t, first.PrevURL)
	assert.Empty(t, first.NextURL)

	empty := newPagination(routes.JuryAuditLog, 1, 0)
	assert.Empty(t, empty.Pages)
	assert.Empty(t, empty.NextURL)
}

func TestParsePageNumber(t *testing.T) {
	assert.Equal(t, 1, parsePageNumber(""))
	assert.Equal(t, 1, parsePageNumber("x"))
	assert.Equal(t, 1, parsePageNumber("-1"))
	assert.Equal(t, 7, parsePageNumber("7"))
}
