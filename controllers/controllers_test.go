package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blogem/contest-jury/authenticator"
	"github.com/blogem/contest-jury/services"
	"github.com/blogem/contest-jury/services/mocks"
	"github.com/blogem/contest-jury/userctx"
)

type testEnv struct {
	auditLog   *mocks.MockAuditLogService
	config     *mocks.MockConfigurationService
	scoreboard *mocks.MockScoreboardService
	users      *mocks.MockUserService
	ctrl       *Controllers
}

func newTestEnv(t *testing.T, provider authenticator.Provider) *testEnv {
	t.Helper()

	env := &testEnv{
		auditLog:   mocks.NewMockAuditLogService(t),
		config:     mocks.NewMockConfigurationService(t),
		scoreboard: mocks.NewMockScoreboardService(t),
		users:      mocks.NewMockUserService(t),
	}
	srvs := &services.Services{
		AuditLog:      env.auditLog,
		Configuration: env.config,
		Scoreboard:    env.scoreboard,
		Users:         env.users,
	}
	env.ctrl = NewControllers(srvs, Options{
		Provider:          provider,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		AdminRole:         "admin",
		ScoreboardRefresh: 30 * time.Second,
	})
	return env
}

// asAdmin signs the request in as a jury administrator
func asAdmin(req *http.Request) *http.Request {
	id := &userctx.Identity{UserID: 1, Username: "admin", Roles: []string{"admin"}}
	return req.WithContext(userctx.SetIdentity(req.Context(), id))
}

func serve(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// fakeProvider is an identity provider that accepts the code "valid"
type fakeProvider struct {
	claims authenticator.Claims
}

func (p *fakeProvider) GetAuthURL(state string) string {
	return "https://idp.example.org/authorize?state=" + state
}

func (p *fakeProvider) ExchangeCode(_ context.Context, code string) (*authenticator.Token, error) {
	if code != "valid" {
		return nil, errInvalidCode
	}
	return &authenticator.Token{IDToken: "id-token"}, nil
}

func (p *fakeProvider) GetClaims(context.Context, *authenticator.Token) (authenticator.Claims, error) {
	return p.claims, nil
}

type providerError string

func (e providerError) Error() string { return string(e) }

const errInvalidCode = providerError("invalid_grant")
