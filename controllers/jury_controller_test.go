package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJuryController_Index(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := serve(env.ctrl.Jury.Index, asAdmin(httptest.NewRequest(http.MethodGet, "/jury", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<a href="/jury/auditlog/">Audit log</a>`)
	assert.Contains(t, body, `<a href="/public/">Public scoreboard</a>`)
	assert.Contains(t, body, "<span>admin</span>")
	assert.Contains(t, body, `href="/logout"`)
}
