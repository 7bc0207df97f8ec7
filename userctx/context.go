package userctx

import "context"

// Context key type
type contextKey string

const identityKey contextKey = "identity"

// Identity is the signed-in jury account of a request
type Identity struct {
	UserID   int64
	Username string
	Roles    []string
}

// HasRole reports whether the identity carries the given role
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SetIdentity adds the signed-in user to the request context
func SetIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity retrieves the signed-in user from the request context
func GetIdentity(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok && id != nil
}

// GetUsername returns the signed-in username, or "anonymous"
func GetUsername(ctx context.Context) string {
	if id, ok := GetIdentity(ctx); ok {
		return id.Username
	}
	return "anonymous"
}
