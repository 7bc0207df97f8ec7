// Package authenticator signs jury members in through an OpenID Connect provider.
package authenticator

import (
	"context"
	"strings"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// usernameClaims are tried in order to find the jury username
var usernameClaims = []string{"preferred_username", "nickname", "email", "sub"}

// Username returns the first non-empty username-like claim
func (c Claims) Username() string {
	for _, key := range usernameClaims {
		if v, ok := c[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
