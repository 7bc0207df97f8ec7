package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/contest-jury/authenticator"
	"github.com/blogem/contest-jury/middleware"
	"github.com/blogem/contest-jury/repositories"
	"github.com/blogem/contest-jury/routes"
	"github.com/blogem/contest-jury/userctx"
)

const sessionState = "state"

// AuthController signs jury members in and out
type AuthController struct {
	base
	provider authenticator.Provider
}

// NewAuthController creates a new auth controller; provider may be nil
func NewAuthController(b base, provider authenticator.Provider) *AuthController {
	return &AuthController{base: b, provider: provider}
}

// Login initiates the authentication process
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if ac.provider == nil {
		http.Error(w, "Login is not configured", http.StatusServiceUnavailable)
		return
	}

	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	if err := session.GetSession(r).Set(sessionState, state); err != nil {
		http.Error(w, "Failed to store login state: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, ac.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if ac.provider == nil {
		http.Error(w, "Login is not configured", http.StatusServiceUnavailable)
		return
	}

	sess := session.GetSession(r)
	storedState, ok := sess.Get(sessionState).(string)
	if !ok || storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}
	_ = sess.Delete(sessionState)

	ctx := r.Context()
	token, err := ac.provider.ExchangeCode(ctx, r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	claims, err := ac.provider.GetClaims(ctx, token)
	if err != nil {
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	username := claims.Username()
	user, err := ac.services.Users.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		ac.logger.Warn("login by unknown jury account", "username", username)
		http.Error(w, "No jury account for "+username, http.StatusForbidden)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	identity := &userctx.Identity{UserID: user.ID, Username: user.Username, Roles: user.Roles}
	if err := middleware.SignIn(r, identity); err != nil {
		http.Error(w, "Failed to store session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	ac.logger.Info("jury member signed in", "username", user.Username, "user_id", user.ID)

	http.Redirect(w, r, middleware.RedirectAfterLogin(r, routes.MustURL(routes.JuryHome, nil)), http.StatusSeeOther)
}

// Logout clears the session and returns to the public scoreboard
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := middleware.SignOut(r); err != nil {
		http.Error(w, "Failed to clear session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, routes.MustURL(routes.PublicScoreboard, nil), http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
