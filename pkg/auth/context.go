package auth

import "context"

type contextKey struct{}

var identityKey contextKey

// WithIdentity returns a context carrying the caller identity. The transport
// calls this once per request, before any resolver runs.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	if identity == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom extracts the caller identity, or nil for an unauthenticated
// request.
func IdentityFrom(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey).(*Identity)
	return identity
}
