package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/contest-jury/userctx"
)

// Session keys holding the signed-in jury account
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRoles    = "roles"

	sessionRedirect = "redirect_after_login"
)

// SignIn stores the identity in the session of the request
func SignIn(r *http.Request, id *userctx.Identity) error {
	sess := session.GetSession(r)
	if err := sess.Set(SessionUserID, id.UserID); err != nil {
		return err
	}
	if err := sess.Set(SessionUsername, id.Username); err != nil {
		return err
	}
	return sess.Set(SessionRoles, id.Roles)
}

// SignOut removes the identity from the session of the request
func SignOut(r *http.Request) error {
	sess := session.GetSession(r)
	for _, key := range []string{SessionUserID, SessionUsername, SessionRoles, sessionRedirect} {
		if err := sess.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// RedirectAfterLogin returns and forgets the page an anonymous user tried to open
func RedirectAfterLogin(r *http.Request, fallback string) string {
	sess := session.GetSession(r)
	target, ok := sess.Get(sessionRedirect).(string)
	if !ok || target == "" {
		return fallback
	}
	_ = sess.Delete(sessionRedirect)
	return target
}

func identityFromSession(r *http.Request) (*userctx.Identity, bool) {
	sess := session.GetSession(r)
	userID, ok := sess.Get(SessionUserID).(int64)
	if !ok {
		return nil, false
	}
	username, _ := sess.Get(SessionUsername).(string)
	roles, _ := sess.Get(SessionRoles).([]string)
	return &userctx.Identity{UserID: userID, Username: username, Roles: roles}, true
}

// LoadIdentity puts the signed-in user, if any, into the request context
func LoadIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := identityFromSession(r); ok {
			r = r.WithContext(userctx.SetIdentity(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identityFromSession(r)
		if !ok {
			_ = session.GetSession(r).Set(sessionRedirect, r.URL.RequestURI())
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(userctx.SetIdentity(r.Context(), id)))
	})
}

// RequireRole rejects signed-in users lacking role. It must run after RequireAuth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := userctx.GetIdentity(r.Context())
			if !ok || !id.HasRole(role) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
