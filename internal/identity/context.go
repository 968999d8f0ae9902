package identity

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Identity describes the authenticated caller of a request.
type Identity struct {
	UserID snowflake.ID
	Staff  bool
}

type identityKey struct{}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the caller identity. ok is false for anonymous requests.
func FromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == 0 {
		return Identity{}, false
	}
	return id, true
}
