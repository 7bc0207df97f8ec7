package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/contest-jury/config"
	"github.com/blogem/contest-jury/controllers"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DB_PATH", "LOG_LEVEL", "ENV", "USE_HTTPS", "ADMIN_ROLE", "TIME_FORMAT",
		"AUDITLOG_PAGE_SIZE", "SCOREBOARD_REFRESH",
		"OIDC_DOMAIN", "OIDC_CLIENT_ID", "OIDC_CLIENT_SECRET", "OIDC_CALLBACK_URL",
	} {
		t.Setenv(key, "")
	}
}

// runCLI executes the jury command against a scratch database
func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "--db", dbPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_MigrateRecordAndList(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "error")
	dbPath := filepath.Join(t.TempDir(), "jury.db")

	out, err := runCLI(t, dbPath, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 3")

	out, err = runCLI(t, dbPath, "auditlog", "record",
		"--user", "admin", "--datatype", "problem", "--id", "3", "--action", "updated", "--contest", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "recorded audit log entry 1")

	_, err = runCLI(t, dbPath, "auditlog", "record", "--datatype", "problem", "--action", " ")
	assert.Error(t, err)

	out, err = runCLI(t, dbPath, "auditlog", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "TIME", "USER", "CONTEST", "ACTION"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], "admin")
	assert.Contains(t, lines[1], "c2")
	assert.Contains(t, lines[1], "problem 3 updated")
	assert.Equal(t, "page 1 of 1", lines[2])

	out, err = runCLI(t, dbPath, "auditlog", "list", "--page", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "page 5 of 1")
}

func TestCLI_Scoreboard(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "error")
	dbPath := filepath.Join(t.TempDir(), "jury.db")

	out, err := runCLI(t, dbPath, "scoreboard", "--static")
	require.NoError(t, err)
	assert.Contains(t, out, "No active contest")
	assert.NotContains(t, out, "<nav>")
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.DBPath = filepath.Join(t.TempDir(), "jury.db")

	a, err := newApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSetupRouter(t *testing.T) {
	a := newTestApp(t)
	ctrl := controllers.NewControllers(a.services, controllers.Options{
		Logger:            a.logger,
		AdminRole:         a.cfg.AdminRole,
		ScoreboardRefresh: a.cfg.ScoreboardRefresh,
	})
	r, err := setupRouter(a, ctrl)
	require.NoError(t, err)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"contest-jury"}`, rec.Body.String())

	rec = get("/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/public/", rec.Header().Get("Location"))

	rec = get("/public/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No active contest")

	for _, path := range []string{"/jury", "/jury/auditlog/"} {
		rec = get(path)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}

	rec = get("/login")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get("/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jury_http_requests_total")
}
